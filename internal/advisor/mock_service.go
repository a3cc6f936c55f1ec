package advisor

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Yiqing888/deadlydelivery.app/internal/calculator"
	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) Calculate(ctx context.Context, input domain.CalculatorInput) (domain.CalculationResult, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.CalculationResult), args.Error(1)
}

func (m *MockService) RunPlan(ctx context.Context, style domain.RunStyle, hasSquad bool) ([]domain.RunPlan, error) {
	args := m.Called(ctx, style, hasSquad)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RunPlan), args.Error(1)
}

func (m *MockService) RiskTable(ctx context.Context) calculator.RiskTable {
	args := m.Called(ctx)
	return args.Get(0).(calculator.RiskTable)
}

func (m *MockService) Classes(ctx context.Context) []domain.ClassInfo {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ClassInfo)
}

func (m *MockService) UnlockPath(ctx context.Context, gold int, style domain.Playstyle) ([]domain.UnlockStep, error) {
	args := m.Called(ctx, gold, style)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnlockStep), args.Error(1)
}

func (m *MockService) Monsters(ctx context.Context, floor int) []domain.Monster {
	args := m.Called(ctx, floor)
	return args.Get(0).([]domain.Monster)
}

func (m *MockService) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
