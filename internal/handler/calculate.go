package handler

import (
	"net/http"

	"github.com/Yiqing888/deadlydelivery.app/internal/advisor"
	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

// CalculatorHandler serves EV calculations and the risk table
type CalculatorHandler struct {
	service advisor.Service
}

// NewCalculatorHandler creates a new calculator handler
func NewCalculatorHandler(service advisor.Service) *CalculatorHandler {
	return &CalculatorHandler{service: service}
}

// HandleCalculate evaluates one elevator vote
// @Summary Calculate EV
// @Description Compare banking the current haul against pushing to the target floor
// @Tags calculator
// @Accept json
// @Produce json
// @Param input body domain.CalculatorInput true "Squad situation"
// @Success 200 {object} domain.CalculationResult
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/calculate [post]
func (h *CalculatorHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var input domain.CalculatorInput
	if err := DecodeAndValidateRequest(r, w, &input, OpCalculate); err != nil {
		return
	}

	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, OpCalculate, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleRiskTable returns base risk per floor and the modifier tables
// @Summary Risk table
// @Tags calculator
// @Produce json
// @Success 200 {object} calculator.RiskTable
// @Security ApiKeyAuth
// @Router /api/v1/risk-table [get]
func (h *CalculatorHandler) HandleRiskTable(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.RiskTable(r.Context()))
}
