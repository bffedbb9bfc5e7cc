package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Fetcher is a mock implementation of remote.Fetcher
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) FetchNumbers(ctx context.Context, url string) ([]int64, error) {
	args := m.Called(ctx, url)
	if numbers, ok := args.Get(0).([]int64); ok {
		return numbers, args.Error(1)
	}
	return nil, args.Error(1)
}
