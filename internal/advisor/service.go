package advisor

import (
	"context"
	"time"

	"github.com/Yiqing888/deadlydelivery.app/internal/calculator"
	"github.com/Yiqing888/deadlydelivery.app/internal/catalog"
	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
	"github.com/Yiqing888/deadlydelivery.app/internal/logger"
	"github.com/Yiqing888/deadlydelivery.app/internal/metrics"
	"github.com/Yiqing888/deadlydelivery.app/internal/roadmap"
	"github.com/Yiqing888/deadlydelivery.app/internal/validation"
)

// Service is the entry point used by the HTTP API and the CLI
type Service interface {
	Calculate(ctx context.Context, input domain.CalculatorInput) (domain.CalculationResult, error)
	RunPlan(ctx context.Context, style domain.RunStyle, hasSquad bool) ([]domain.RunPlan, error)
	RiskTable(ctx context.Context) calculator.RiskTable
	Classes(ctx context.Context) []domain.ClassInfo
	UnlockPath(ctx context.Context, gold int, style domain.Playstyle) ([]domain.UnlockStep, error)
	Monsters(ctx context.Context, floor int) []domain.Monster
	CheckHealth(ctx context.Context) error
}

// Options configures the service cache
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

// DefaultOptions matches the server defaults
func DefaultOptions() Options {
	return Options{CacheSize: 512, CacheTTL: 10 * time.Minute}
}

type service struct {
	estimator *calculator.Estimator
	generator *roadmap.Generator
	catalog   *catalog.Catalog
	validator *validation.Validator
	cache     *resultCache
}

// NewService creates a new advisor service.
// With a positive CacheTTL the result cache runs an expiry goroutine that lives
// as long as the process; build one service and share it.
func NewService(estimator *calculator.Estimator, generator *roadmap.Generator, cat *catalog.Catalog, opts Options) Service {
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultOptions().CacheSize
	}
	return &service{
		estimator: estimator,
		generator: generator,
		catalog:   cat,
		validator: validation.Default(),
		cache:     newResultCache(opts.CacheSize, opts.CacheTTL),
	}
}

// Calculate validates input and returns the EV recommendation
func (s *service) Calculate(ctx context.Context, input domain.CalculatorInput) (domain.CalculationResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.ValidateInput(input); err != nil {
		log.Debug("Rejected calculator input", "error", err)
		return domain.CalculationResult{}, err
	}

	if result, ok := s.cache.Get(input); ok {
		metrics.ResultCacheHits.Inc()
		return result, nil
	}
	metrics.ResultCacheMisses.Inc()

	result := s.estimator.Calculate(input)
	s.cache.Set(input, result)

	metrics.CalculationsTotal.WithLabelValues(string(result.Decision)).Inc()
	metrics.DeathProbability.Observe(result.DeathProb)

	log.Debug("EV calculated",
		"current_floor", input.CurrentFloor,
		"target_floor", input.TargetFloor,
		"decision", result.Decision,
		"death_prob", result.DeathProb,
		"diff_ratio", result.DiffRatio)

	return result, nil
}

// RunPlan returns the ten-run plan for a style
func (s *service) RunPlan(ctx context.Context, style domain.RunStyle, hasSquad bool) ([]domain.RunPlan, error) {
	parsed, err := roadmap.ParseRunStyle(string(style))
	if err != nil {
		return nil, err
	}

	plan := s.generator.GenerateRunPlan(parsed, hasSquad)
	metrics.RunPlansTotal.WithLabelValues(string(parsed)).Inc()

	logger.FromContext(ctx).Debug("Run plan generated", "style", parsed, "has_squad", hasSquad, "runs", len(plan))
	return plan, nil
}

func (s *service) RiskTable(_ context.Context) calculator.RiskTable {
	return s.estimator.RiskTable()
}

func (s *service) Classes(_ context.Context) []domain.ClassInfo {
	return s.catalog.Classes()
}

func (s *service) UnlockPath(_ context.Context, gold int, style domain.Playstyle) ([]domain.UnlockStep, error) {
	if gold < 0 {
		gold = 0
	}
	return s.catalog.UnlockPath(gold, style)
}

// Monsters lists every monster, or only those on floor when floor > 0
func (s *service) Monsters(_ context.Context, floor int) []domain.Monster {
	if floor > 0 {
		return s.catalog.MonstersOnFloor(floor)
	}
	return s.catalog.Monsters()
}

func (s *service) CheckHealth(ctx context.Context) error {
	return s.catalog.CheckHealth(ctx)
}
