package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Yiqing888/deadlydelivery.app/internal/advisor"
	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

func TestCatalogHandler(t *testing.T) {
	porter := domain.ClassInfo{ID: "porter", Name: domain.ClassPorter, UnlockCost: 40000, Role: domain.RoleCarry}
	puppet := domain.Monster{ID: "puppet", Name: "Puppet", Floors: []int{4, 5}, DangerLevel: 2}

	t.Run("classes", func(t *testing.T) {
		mockSvc := &advisor.MockService{}
		mockSvc.On("Classes", mock.Anything).Return([]domain.ClassInfo{porter})

		w := httptest.NewRecorder()
		NewCatalogHandler(mockSvc).HandleGetClasses(w, httptest.NewRequest(http.MethodGet, "/api/v1/classes", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp ClassesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []domain.ClassInfo{porter}, resp.Classes)
	})

	t.Run("unlock path", func(t *testing.T) {
		mockSvc := &advisor.MockService{}
		steps := []domain.UnlockStep{{Class: porter, Wait: 30000, Reason: "carry"}}
		mockSvc.On("UnlockPath", mock.Anything, 10000, domain.PlaystyleRunner).Return(steps, nil)

		w := httptest.NewRecorder()
		NewCatalogHandler(mockSvc).HandleGetUnlockPath(w,
			httptest.NewRequest(http.MethodGet, "/api/v1/classes/unlock-path?gold=10000&style=Runner", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp UnlockPathResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 10000, resp.Gold)
		assert.Equal(t, domain.PlaystyleRunner, resp.Style)
		assert.Equal(t, steps, resp.Steps)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unlock path bad gold", func(t *testing.T) {
		mockSvc := &advisor.MockService{}
		w := httptest.NewRecorder()
		NewCatalogHandler(mockSvc).HandleGetUnlockPath(w,
			httptest.NewRequest(http.MethodGet, "/api/v1/classes/unlock-path?gold=lots", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid gold query parameter")
		mockSvc.AssertNotCalled(t, "UnlockPath", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unlock path unknown playstyle", func(t *testing.T) {
		mockSvc := &advisor.MockService{}
		mockSvc.On("UnlockPath", mock.Anything, 0, domain.Playstyle("pacifist")).Return(nil, domain.ErrInvalidPlaystyle)

		w := httptest.NewRecorder()
		NewCatalogHandler(mockSvc).HandleGetUnlockPath(w,
			httptest.NewRequest(http.MethodGet, "/api/v1/classes/unlock-path?style=pacifist", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidPlaystyleError)
	})

	t.Run("monsters by floor", func(t *testing.T) {
		mockSvc := &advisor.MockService{}
		mockSvc.On("Monsters", mock.Anything, 4).Return([]domain.Monster{puppet})

		w := httptest.NewRecorder()
		NewCatalogHandler(mockSvc).HandleGetMonsters(w, httptest.NewRequest(http.MethodGet, "/api/v1/monsters?floor=4", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp MonstersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 4, resp.Floor)
		assert.Equal(t, []domain.Monster{puppet}, resp.Monsters)
	})
}
