package dashboards

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FailurePolicy decides what a panel does when one of its queries fails.
type FailurePolicy int

const (
	// FailWhole aborts the panel on the first failing query.
	FailWhole FailurePolicy = iota
	// PerField keeps the successful fields and reports the failed ones.
	PerField
)

// namedQuery fills one panel field. Each query writes to its own field so
// they can run concurrently without locking.
type namedQuery struct {
	field string
	run   func(ctx context.Context) error
}

type queryError struct {
	field string
	err   error
}

func (e *queryError) Error() string {
	return e.field + ": " + e.err.Error()
}

func (e *queryError) Unwrap() error {
	return e.err
}

// runQueries fans the queries out and joins them. Under FailWhole the first
// error cancels the rest and is returned. Under PerField the names of the
// failed fields are returned sorted.
func runQueries(ctx context.Context, policy FailurePolicy, queries []namedQuery) ([]string, error) {
	if policy == PerField {
		var (
			mu     sync.Mutex
			failed []string
			group  errgroup.Group
		)
		for _, query := range queries {
			query := query
			group.Go(func() error {
				if err := query.run(ctx); err != nil {
					mu.Lock()
					failed = append(failed, query.field)
					mu.Unlock()
				}
				return nil
			})
		}
		_ = group.Wait()
		sort.Strings(failed)
		return failed, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, query := range queries {
		query := query
		group.Go(func() error {
			if err := query.run(groupCtx); err != nil {
				return &queryError{field: query.field, err: err}
			}
			return nil
		})
	}
	return nil, group.Wait()
}
