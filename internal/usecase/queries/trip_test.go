//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"ridepool/internal/pkg/errs"
	"ridepool/internal/usecase/queries"
	"ridepool/tests/common/builder"
	queriesmock "ridepool/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTripQueriesFixture(t *testing.T) (queries.TripQueries, *queriesmock.MockTripViewRepo, *queriesmock.MockReservationViewRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	trips := queriesmock.NewMockTripViewRepo(ctrl)
	reservations := queriesmock.NewMockReservationViewRepo(ctrl)
	return queries.NewTripQueries(trips, reservations), trips, reservations
}

func TestTripQueriesList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all trip views", func(t *testing.T) {
		q, trips, _ := newTripQueriesFixture(t)

		expected := []*queries.TripView{
			builder.NewTripBuilder().BuildReadModel(),
			builder.NewTripBuilder().WithID(2).WithRoute("Sevilla - Granada").BuildReadModel(),
		}
		trips.EXPECT().FindAll(gomock.Any()).Return(expected, nil)

		actual, err := q.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(expected, actual))
	})

	t.Run("wraps store failures", func(t *testing.T) {
		q, trips, _ := newTripQueriesFixture(t)

		trips.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := q.List(ctx)
		require.ErrorIs(t, err, errs.ErrStoreFailure)
	})
}

func TestTripQueriesSearchByDestination(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by route text", func(t *testing.T) {
		q, trips, _ := newTripQueriesFixture(t)

		expected := []*queries.TripView{builder.NewTripBuilder().BuildReadModel()}
		trips.EXPECT().FindByDestination(gomock.Any(), "Valencia").Return(expected, nil)

		actual, err := q.SearchByDestination(ctx, "Valencia")
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(expected, actual))
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		q, trips, _ := newTripQueriesFixture(t)

		trips.EXPECT().FindByDestination(gomock.Any(), "Lisboa").Return(nil, nil)

		actual, err := q.SearchByDestination(ctx, "Lisboa")
		require.NoError(t, err)
		assert.Empty(t, actual)
	})
}

func TestTripQueriesGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("composes trip and reservations", func(t *testing.T) {
		q, trips, reservations := newTripQueriesFixture(t)

		view := builder.NewTripBuilder().BuildReadModel()
		items := []*queries.ReservationListItem{
			builder.NewReservationBuilder().BuildListItem(),
			builder.NewReservationBuilder().WithSeq(2).WithUser("Juan Perez").BuildListItem(),
		}
		trips.EXPECT().FindByID(gomock.Any(), int64(1)).Return(view, nil)
		reservations.EXPECT().FindByTrip(gomock.Any(), int64(1)).Return(items, nil)

		actual, err := q.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(&queries.TripDetailView{Trip: view, Reservations: items}, actual))
	})

	t.Run("unknown trip", func(t *testing.T) {
		q, trips, _ := newTripQueriesFixture(t)

		trips.EXPECT().FindByID(gomock.Any(), int64(9)).
			Return(nil, notFoundErr())

		_, err := q.GetByID(ctx, 9)
		require.ErrorIs(t, err, errs.ErrTripNotFound)
	})
}
