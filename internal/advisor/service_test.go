package advisor

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yiqing888/deadlydelivery.app/internal/calculator"
	"github.com/Yiqing888/deadlydelivery.app/internal/catalog"
	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
	"github.com/Yiqing888/deadlydelivery.app/internal/metrics"
	"github.com/Yiqing888/deadlydelivery.app/internal/roadmap"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	cat, err := catalog.Load("../../configs/catalog")
	require.NoError(t, err)

	return NewService(
		calculator.NewEstimator(calculator.DefaultRiskConfig()),
		roadmap.NewGenerator(roadmap.DefaultTemplate()),
		cat,
		DefaultOptions(),
	)
}

func validInput() domain.CalculatorInput {
	return domain.CalculatorInput{
		CurrentFloor:   1,
		TargetFloor:    2,
		AlivePlayers:   4,
		PlayerClass:    domain.ClassOddJobber,
		InventoryValue: 600,
		RiskPreference: domain.RiskNormal,
	}
}

func TestService_Calculate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("matches the estimator", func(t *testing.T) {
		result, err := svc.Calculate(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, calculator.RunCalculation(validInput()), result)
		assert.Equal(t, domain.DecisionDeeper, result.Decision)
	})

	t.Run("second call is served from cache with identical output", func(t *testing.T) {
		input := validInput()
		input.InventoryValue = 1234

		hits := testutil.ToFloat64(metrics.ResultCacheHits)
		misses := testutil.ToFloat64(metrics.ResultCacheMisses)

		first, err := svc.Calculate(ctx, input)
		require.NoError(t, err)
		second, err := svc.Calculate(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ResultCacheMisses)-misses)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ResultCacheHits)-hits)
	})

	t.Run("counts decisions", func(t *testing.T) {
		input := validInput()
		input.InventoryValue = 777
		before := testutil.ToFloat64(metrics.CalculationsTotal.WithLabelValues(string(domain.DecisionDeeper)))

		_, err := svc.Calculate(ctx, input)
		require.NoError(t, err)

		after := testutil.ToFloat64(metrics.CalculationsTotal.WithLabelValues(string(domain.DecisionDeeper)))
		assert.Equal(t, 1.0, after-before)
	})

	t.Run("mutating a returned result does not corrupt the cache", func(t *testing.T) {
		input := validInput()
		input.CurrentFloor, input.TargetFloor = 3, 8
		input.InventoryValue = 5000

		first, err := svc.Calculate(ctx, input)
		require.NoError(t, err)
		require.NotEmpty(t, first.Notes)
		original := first.Notes[0]
		first.Notes[0] = "scribbled"

		second, err := svc.Calculate(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, original, second.Notes[0])
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*domain.CalculatorInput)
		}{
			{"target not above current", func(in *domain.CalculatorInput) { in.TargetFloor = in.CurrentFloor }},
			{"too many players", func(in *domain.CalculatorInput) { in.AlivePlayers = 5 }},
			{"unknown class", func(in *domain.CalculatorInput) { in.PlayerClass = "Janitor" }},
			{"negative inventory", func(in *domain.CalculatorInput) { in.InventoryValue = -1 }},
			{"bad tier", func(in *domain.CalculatorInput) { in.TimeLeftTier = "NONE" }},
			{"missing risk preference", func(in *domain.CalculatorInput) { in.RiskPreference = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				input := validInput()
				tt.mutate(&input)
				_, err := svc.Calculate(ctx, input)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			})
		}
	})
}

func TestService_RunPlan(t *testing.T) {
	svc := newTestService(t)

	plan, err := svc.RunPlan(context.Background(), domain.RunStyleGreedy, true)
	require.NoError(t, err)
	assert.Equal(t, roadmap.GenerateRunPlan(domain.RunStyleGreedy, true), plan)

	_, err = svc.RunPlan(context.Background(), "reckless", true)
	assert.ErrorIs(t, err, domain.ErrInvalidRunStyle)
}

func TestService_Catalog(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.Len(t, svc.Classes(ctx), 6)
	assert.Len(t, svc.Monsters(ctx, 0), 8)
	assert.Equal(t, []string{"running-food", "crocodile"},
		lo.Map(svc.Monsters(ctx, 1), func(m domain.Monster, _ int) string { return m.ID }))

	steps, err := svc.UnlockPath(ctx, -500, domain.PlaystyleCombat)
	require.NoError(t, err)
	require.Len(t, steps, 4)
	assert.Equal(t, 32000, steps[1].Wait, "negative gold is treated as zero")

	_, err = svc.UnlockPath(ctx, 0, "pacifist")
	assert.ErrorIs(t, err, domain.ErrInvalidPlaystyle)

	assert.NoError(t, svc.CheckHealth(ctx))
	assert.Len(t, svc.RiskTable(ctx).Floors, 12)
}

func TestResultCache_VersionAndExpiry(t *testing.T) {
	t.Run("stale schema entries are dropped", func(t *testing.T) {
		c := newResultCache(4, time.Minute)
		c.lru.Add(validInput(), &cachedResult{Version: "0.9"})

		_, ok := c.Get(validInput())
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("entries expire after ttl", func(t *testing.T) {
		c := newResultCache(4, 20*time.Millisecond)
		c.Set(validInput(), calculator.RunCalculation(validInput()))

		_, ok := c.Get(validInput())
		require.True(t, ok)

		assert.Eventually(t, func() bool {
			_, ok := c.Get(validInput())
			return !ok
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("clear empties the cache", func(t *testing.T) {
		c := newResultCache(4, time.Minute)
		c.Set(validInput(), domain.CalculationResult{})
		c.Clear()
		assert.Equal(t, 0, c.Len())
	})

	t.Run("nil notes come back as empty slice", func(t *testing.T) {
		c := newResultCache(4, time.Minute)
		c.Set(validInput(), domain.CalculationResult{})
		got, ok := c.Get(validInput())
		require.True(t, ok)
		assert.NotNil(t, got.Notes)
	})
}
