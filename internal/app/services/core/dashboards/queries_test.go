package dashboards

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunQueries_FailWholeCancelsSiblings(t *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})

	queries := []namedQuery{
		{field: "slow", run: func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			close(cancelled)
			return ctx.Err()
		}},
		{field: "broken", run: func(ctx context.Context) error {
			<-started
			return errors.New("boom")
		}},
	}

	_, err := runQueries(context.Background(), FailWhole, queries)
	require.Error(t, err)
	<-cancelled

	var qErr *queryError
	require.ErrorAs(t, err, &qErr)
	assert.Equal(t, "broken", qErr.field)
}

func TestRunQueries_PerFieldCollectsFailures(t *testing.T) {
	fail := func(context.Context) error { return errors.New("down") }
	ok := func(context.Context) error { return nil }

	failed, err := runQueries(context.Background(), PerField, []namedQuery{
		{field: "zeta", run: fail},
		{field: "alpha", run: fail},
		{field: "beta", run: ok},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, failed)
}
