package handler

import (
	"net/http"
	"strings"

	"github.com/Yiqing888/deadlydelivery.app/internal/advisor"
	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

// ClassesResponse lists every class
type ClassesResponse struct {
	Classes []domain.ClassInfo `json:"classes"`
}

// UnlockPathResponse is a suggested purchase order
type UnlockPathResponse struct {
	Gold  int                 `json:"gold"`
	Style domain.Playstyle    `json:"style"`
	Steps []domain.UnlockStep `json:"steps"`
}

// MonstersResponse lists monsters, optionally for one floor
type MonstersResponse struct {
	Floor    int              `json:"floor,omitempty"`
	Monsters []domain.Monster `json:"monsters"`
}

// CatalogHandler serves the class and monster reference data
type CatalogHandler struct {
	service advisor.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service advisor.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// HandleGetClasses lists classes
// @Summary Classes
// @Tags catalog
// @Produce json
// @Success 200 {object} ClassesResponse
// @Security ApiKeyAuth
// @Router /api/v1/classes [get]
func (h *CatalogHandler) HandleGetClasses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ClassesResponse{Classes: h.service.Classes(r.Context())})
}

// HandleGetUnlockPath suggests the next classes to buy
// @Summary Class unlock path
// @Tags catalog
// @Produce json
// @Param gold query int false "Gold on hand"
// @Param style query string false "steady, combat, runner or support" default(steady)
// @Success 200 {object} UnlockPathResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/classes/unlock-path [get]
func (h *CatalogHandler) HandleGetUnlockPath(w http.ResponseWriter, r *http.Request) {
	gold, ok := GetIntQueryParam(r, w, "gold", 0)
	if !ok {
		return
	}
	style := domain.Playstyle(strings.ToLower(strings.TrimSpace(GetOptionalQueryParam(r, "style", string(domain.PlaystyleSteady)))))

	steps, err := h.service.UnlockPath(r.Context(), gold, style)
	if err != nil {
		respondServiceError(w, r, OpUnlockPath, err)
		return
	}

	respondJSON(w, http.StatusOK, UnlockPathResponse{Gold: max(0, gold), Style: style, Steps: steps})
}

// HandleGetMonsters lists monsters, filtered by floor when given
// @Summary Monsters
// @Tags catalog
// @Produce json
// @Param floor query int false "Only monsters seen on this floor"
// @Success 200 {object} MonstersResponse
// @Security ApiKeyAuth
// @Router /api/v1/monsters [get]
func (h *CatalogHandler) HandleGetMonsters(w http.ResponseWriter, r *http.Request) {
	floor, ok := GetIntQueryParam(r, w, "floor", 0)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, MonstersResponse{Floor: max(0, floor), Monsters: h.service.Monsters(r.Context(), floor)})
}
