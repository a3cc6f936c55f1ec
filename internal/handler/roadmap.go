package handler

import (
	"net/http"
	"strings"

	"github.com/Yiqing888/deadlydelivery.app/internal/advisor"
	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

// RoadmapResponse is a ten-run progression plan
type RoadmapResponse struct {
	Style    domain.RunStyle  `json:"style"`
	HasSquad bool             `json:"has_squad"`
	Plan     []domain.RunPlan `json:"plan"`
}

// HandleGetRoadmap returns the run plan for a style
// @Summary Run plan
// @Description Ten suggested runs with target floors and tips
// @Tags roadmap
// @Produce json
// @Param style query string false "safe, balanced or greedy" default(balanced)
// @Param squad query bool false "Playing with a squad"
// @Success 200 {object} RoadmapResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/roadmap [get]
func HandleGetRoadmap(svc advisor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		style := domain.RunStyle(strings.ToLower(strings.TrimSpace(GetOptionalQueryParam(r, "style", string(domain.RunStyleBalanced)))))

		hasSquad, ok := GetBoolQueryParam(r, w, "squad", false)
		if !ok {
			return
		}

		plan, err := svc.RunPlan(r.Context(), style, hasSquad)
		if err != nil {
			respondServiceError(w, r, OpRunPlan, err)
			return
		}

		respondJSON(w, http.StatusOK, RoadmapResponse{
			Style:    style,
			HasSquad: hasSquad,
			Plan:     plan,
		})
	}
}
