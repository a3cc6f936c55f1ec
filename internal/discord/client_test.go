package discord

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
	"github.com/Yiqing888/deadlydelivery.app/internal/handler"
)

func goldenInput() domain.CalculatorInput {
	return domain.CalculatorInput{
		CurrentFloor:   1,
		TargetFloor:    2,
		AlivePlayers:   4,
		PlayerClass:    domain.ClassOddJobber,
		InventoryValue: 600,
		RiskPreference: domain.RiskNormal,
	}
}

func TestAPIClient_Calculate(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Mux.HandleFunc("POST /api/v1/calculate", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var input domain.CalculatorInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, goldenInput(), input)

		WriteJSON(w, http.StatusOK, domain.CalculationResult{
			Decision:      domain.DecisionDeeper,
			EstimatedGain: 375,
			Notes:         []string{},
		})
	})

	result, err := ctx.APIClient.Calculate(context.Background(), goldenInput())
	require.NoError(t, err)
	assert.Equal(t, domain.DecisionDeeper, result.Decision)
	assert.Equal(t, 375, result.EstimatedGain)
}

func TestAPIClient_Retries(t *testing.T) {
	t.Run("recovers after server errors", func(t *testing.T) {
		ctx := SetupTestContext(t)
		var calls atomic.Int32
		ctx.Mux.HandleFunc("GET /api/v1/roadmap", func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				WriteJSON(w, http.StatusInternalServerError, handler.ErrorResponse{Error: "boom"})
				return
			}
			WriteJSON(w, http.StatusOK, handler.RoadmapResponse{Style: domain.RunStyleSafe})
		})

		plan, err := ctx.APIClient.RunPlan(context.Background(), "safe", false)
		require.NoError(t, err)
		assert.Equal(t, domain.RunStyleSafe, plan.Style)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		ctx := SetupTestContext(t)
		var calls atomic.Int32
		ctx.Mux.HandleFunc("GET /api/v1/roadmap", func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			WriteJSON(w, http.StatusServiceUnavailable, handler.ErrorResponse{Error: "down"})
		})

		_, err := ctx.APIClient.RunPlan(context.Background(), "safe", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max retries exceeded")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		assert.Equal(t, "down", apiErr.Message)
		assert.Equal(t, int32(DefaultMaxRetries+1), calls.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		ctx := SetupTestContext(t)
		var calls atomic.Int32
		ctx.Mux.HandleFunc("POST /api/v1/calculate", func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			WriteJSON(w, http.StatusBadRequest, handler.ValidationErrorResponse{
				Error:  "Invalid request",
				Fields: map[string]string{"target_floor": "must be greater than CurrentFloor"},
			})
		})

		_, err := ctx.APIClient.Calculate(context.Background(), goldenInput())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "must be greater than CurrentFloor", apiErr.Fields["target_floor"])
		assert.Equal(t, "API error: Invalid request (target_floor: must be greater than CurrentFloor)", apiErr.Error())
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("context cancellation stops the backoff", func(t *testing.T) {
		ctx := SetupTestContext(t)
		ctx.APIClient.RetryDelay = time.Hour
		ctx.Mux.HandleFunc("GET /api/v1/roadmap", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		reqCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := ctx.APIClient.RunPlan(reqCtx, "safe", false)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestAPIClient_QueryParameters(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Mux.HandleFunc("GET /api/v1/roadmap", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "greedy", r.URL.Query().Get("style"))
		assert.Equal(t, "true", r.URL.Query().Get("squad"))
		WriteJSON(w, http.StatusOK, handler.RoadmapResponse{Style: domain.RunStyleGreedy, HasSquad: true})
	})
	ctx.Mux.HandleFunc("GET /api/v1/classes/unlock-path", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "6000", r.URL.Query().Get("gold"))
		assert.Equal(t, "combat", r.URL.Query().Get("style"))
		WriteJSON(w, http.StatusOK, handler.UnlockPathResponse{Gold: 6000, Style: domain.PlaystyleCombat})
	})

	plan, err := ctx.APIClient.RunPlan(context.Background(), "greedy", true)
	require.NoError(t, err)
	assert.True(t, plan.HasSquad)

	path, err := ctx.APIClient.UnlockPath(context.Background(), 6000, "combat")
	require.NoError(t, err)
	assert.Equal(t, 6000, path.Gold)
}

func TestAPIClient_Health(t *testing.T) {
	ctx := SetupTestContext(t)
	healthy := atomic.Bool{}
	ctx.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if healthy.Load() {
			WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	assert.ErrorIs(t, ctx.APIClient.Health(context.Background()), ErrAPIUnhealthy)

	healthy.Store(true)
	assert.NoError(t, ctx.APIClient.Health(context.Background()))
}

func TestNewAPIClient_TrimsBaseURL(t *testing.T) {
	c := NewAPIClient("http://advisor:8080/", "k")
	assert.Equal(t, "http://advisor:8080", c.BaseURL)
	assert.Equal(t, DefaultMaxRetries, c.MaxRetries)
}
