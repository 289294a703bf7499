//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"ridepool/internal/infra"
	"ridepool/internal/pkg/errs"
	"ridepool/internal/usecase/queries"
	"ridepool/tests/common/builder"
	queriesmock "ridepool/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFoundErr() error {
	return infra.WrapRepoErr(infra.KindNotFound, "not found", errors.New("no rows in result set"))
}

func newReservationQueriesFixture(t *testing.T) (queries.ReservationQueries, *queriesmock.MockReservationViewRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockReservationViewRepo(ctrl)
	return queries.NewReservationQueries(repo), repo
}

func TestReservationQueriesGetByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the view", func(t *testing.T) {
		q, repo := newReservationQueriesFixture(t)

		expected := builder.NewReservationBuilder().BuildReadModel()
		repo.EXPECT().FindByCode(gomock.Any(), "1-1").Return(expected, nil)

		actual, err := q.GetByCode(ctx, "1-1")
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(expected, actual))
	})

	t.Run("unknown code", func(t *testing.T) {
		q, repo := newReservationQueriesFixture(t)

		repo.EXPECT().FindByCode(gomock.Any(), "9-9").Return(nil, notFoundErr())

		_, err := q.GetByCode(ctx, "9-9")
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		q, repo := newReservationQueriesFixture(t)

		repo.EXPECT().FindByCode(gomock.Any(), "1-1").
			Return(nil, infra.WrapRepoErr(infra.KindDBFailure, "query failed", errors.New("connection reset")))

		_, err := q.GetByCode(ctx, "1-1")
		require.ErrorIs(t, err, errs.ErrStoreFailure)
	})
}

func TestReservationQueriesListByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the user's reservations", func(t *testing.T) {
		q, repo := newReservationQueriesFixture(t)

		expected := []*queries.ReservationListItem{
			builder.NewReservationBuilder().BuildListItem(),
			builder.NewReservationBuilder().WithTripID(3).BuildListItem(),
		}
		repo.EXPECT().FindByUser(gomock.Any(), "Ada Lovelace").Return(expected, nil)

		actual, err := q.ListByUser(ctx, "Ada Lovelace")
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(expected, actual))
	})

	t.Run("user without reservations", func(t *testing.T) {
		q, repo := newReservationQueriesFixture(t)

		repo.EXPECT().FindByUser(gomock.Any(), "Grace Hopper").Return(nil, nil)

		actual, err := q.ListByUser(ctx, "Grace Hopper")
		require.NoError(t, err)
		assert.Empty(t, actual)
	})
}

func TestReservationQueriesListByTrip(t *testing.T) {
	ctx := context.Background()

	q, repo := newReservationQueriesFixture(t)

	expected := []*queries.ReservationListItem{
		builder.NewReservationBuilder().BuildListItem(),
		builder.NewReservationBuilder().WithSeq(2).WithUser("Juan Perez").BuildListItem(),
	}
	repo.EXPECT().FindByTrip(gomock.Any(), int64(1)).Return(expected, nil)

	actual, err := q.ListByTrip(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(expected, actual))
}
