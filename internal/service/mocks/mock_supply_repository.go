package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/you-humble/emergency-supply/internal/model"
)

// MockSupplyRepository is a testify mock of the supply service repository.
type MockSupplyRepository struct {
	mock.Mock
}

func NewMockSupplyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSupplyRepository {
	m := &MockSupplyRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSupplyRepository) FindAll(ctx context.Context) ([]*model.Supply, error) {
	ret := m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	if rf, ok := ret.Get(0).(func(context.Context) ([]*model.Supply, error)); ok {
		return rf(ctx)
	}

	var r0 []*model.Supply
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*model.Supply)
	}

	return r0, ret.Error(1)
}

func (m *MockSupplyRepository) FindByName(ctx context.Context, name string) (*model.Supply, error) {
	ret := m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for FindByName")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (*model.Supply, error)); ok {
		return rf(ctx, name)
	}

	return supplyResult(ret)
}

func (m *MockSupplyRepository) Insert(ctx context.Context, s *model.Supply) (*model.Supply, error) {
	ret := m.Called(ctx, s)

	if len(ret) == 0 {
		panic("no return value specified for Insert")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *model.Supply) (*model.Supply, error)); ok {
		return rf(ctx, s)
	}

	return supplyResult(ret)
}

func (m *MockSupplyRepository) UpdateByName(
	ctx context.Context,
	name string,
	patch model.SupplyPatch,
) (*model.Supply, error) {
	ret := m.Called(ctx, name, patch)

	if len(ret) == 0 {
		panic("no return value specified for UpdateByName")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, model.SupplyPatch) (*model.Supply, error)); ok {
		return rf(ctx, name, patch)
	}

	return supplyResult(ret)
}

func (m *MockSupplyRepository) DeleteByName(ctx context.Context, name string) (*model.Supply, error) {
	ret := m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for DeleteByName")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (*model.Supply, error)); ok {
		return rf(ctx, name)
	}

	return supplyResult(ret)
}

func supplyResult(ret mock.Arguments) (*model.Supply, error) {
	var r0 *model.Supply
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Supply)
	}

	return r0, ret.Error(1)
}
