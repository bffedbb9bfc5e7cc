package numbers

import (
	"context"
	"errors"
	"fmt"

	"number-management-service/core/remote"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service aggregates numbers from remote sources.
type Service struct {
	fetcher remote.Fetcher
	logger  *zap.Logger
}

// NewService creates a new numbers service.
func NewService(fetcher remote.Fetcher, logger *zap.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		logger:  logger,
	}
}

// WithLogger returns a copy of the service that logs through l.
func (s *Service) WithLogger(l *zap.Logger) *Service {
	return &Service{fetcher: s.fetcher, logger: l}
}

// Aggregate fetches every source concurrently, waits for all of them and
// returns the distinct numbers they produced in ascending order.
//
// A source that fails contributes nothing and is only logged. The aggregation
// itself is not cancelled by ctx; each fetch is bounded by remote.FetchTimeout.
func (s *Service) Aggregate(ctx context.Context, urls []string) ([]int64, error) {
	ctx = context.WithoutCancel(ctx)
	outcomes := make([][]int64, len(urls))

	var g errgroup.Group
	for i, url := range urls {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("fetch task for %s panicked: %v", url, r)
				}
			}()
			outcomes[i] = s.fetch(ctx, url)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return Merge(outcomes), nil
}

// fetch retrieves one source, downgrading any failure to an empty outcome.
func (s *Service) fetch(ctx context.Context, url string) []int64 {
	numbers, err := s.fetcher.FetchNumbers(ctx, url)
	if err == nil {
		return numbers
	}

	fields := []zap.Field{zap.String("url", url), zap.Error(err)}
	var srcErr *remote.SourceError
	if errors.As(err, &srcErr) {
		fields = append(fields, zap.Bool("timeout", srcErr.Timeout()))
		if srcErr.StatusCode != 0 {
			fields = append(fields, zap.Int("status", srcErr.StatusCode))
		}
	}
	s.logger.Warn("Failed to retrieve numbers from source", fields...)
	return nil
}
