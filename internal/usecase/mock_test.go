package usecase

import (
	"context"
	"sync/atomic"

	"github.com/hszk-dev/liveshows/internal/domain/model"
)

// mockShowSource provides a configurable mock for repository.ShowSource.
type mockShowSource struct {
	fetchFn    func(ctx context.Context) (*model.ShowList, error)
	fetchCount atomic.Int32
}

func (m *mockShowSource) Fetch(ctx context.Context) (*model.ShowList, error) {
	m.fetchCount.Add(1)
	if m.fetchFn != nil {
		return m.fetchFn(ctx)
	}
	return &model.ShowList{}, nil
}

// returning makes the mock return list on every call.
func (m *mockShowSource) returning(list *model.ShowList) *mockShowSource {
	m.fetchFn = func(ctx context.Context) (*model.ShowList, error) {
		return list, nil
	}
	return m
}
