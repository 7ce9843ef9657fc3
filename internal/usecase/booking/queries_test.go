package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

func TestListScopesAndOrders(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	early := h.book(t, h.patient, "2024-04-30", "09:00")
	late := h.book(t, h.patient, "2024-05-01", "15:00")
	mid := h.book(t, h.patient, "2024-05-01", "10:00")
	foreign := h.book(t, h.other, "2024-05-02", "10:00")

	_, err := h.engine.Confirm.Execute(ctx, h.doctor, mid.ID)
	require.NoError(t, err)

	mine, err := h.engine.Queries.List(ctx, h.patient, "")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, []uint{late.ID, mid.ID, early.ID}, []uint{mine[0].ID, mine[1].ID, mine[2].ID})

	doctors, err := h.engine.Queries.List(ctx, h.doctor, "")
	require.NoError(t, err)
	require.Len(t, doctors, 4)
	assert.Equal(t, foreign.ID, doctors[0].ID)

	confirmed, err := h.engine.Queries.List(ctx, h.patient, "confirmed")
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, mid.ID, confirmed[0].ID)

	_, err = h.engine.Queries.List(ctx, h.patient, "archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	none, err := h.engine.Queries.List(ctx, h.otherDoctor, "")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = h.engine.Queries.List(ctx, identity.CallerContext{ID: 1, Role: identity.RoleAdmin}, "")
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestGetIsScoped(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	b := h.book(t, h.patient, "2024-05-01", "09:00")

	_, err := h.engine.Queries.Get(ctx, h.doctor, b.ID)
	assert.NoError(t, err)
	_, err = h.engine.Queries.Get(ctx, h.patient, b.ID)
	assert.NoError(t, err)

	_, err = h.engine.Queries.Get(ctx, h.otherDoctor, b.ID)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	_, err = h.engine.Queries.Get(ctx, h.other, b.ID)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestGetByInspectionNumber(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	todays := h.book(t, h.patient, "2024-05-01", "09:00")
	tomorrows := h.book(t, h.patient, "2024-05-02", "09:00")
	for _, id := range []uint{todays.ID, tomorrows.ID} {
		_, err := h.engine.Confirm.Execute(ctx, h.doctor, id)
		require.NoError(t, err)
	}

	got, err := h.engine.Queries.GetByInspectionNumber(ctx, h.doctor, 1, "")
	require.NoError(t, err)
	assert.Equal(t, todays.ID, got.ID)

	got, err = h.engine.Queries.GetByInspectionNumber(ctx, h.doctor, 1, "2024-05-02")
	require.NoError(t, err)
	assert.Equal(t, tomorrows.ID, got.ID)

	_, err = h.engine.Queries.GetByInspectionNumber(ctx, h.doctor, 2, "")
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	_, err = h.engine.Queries.GetByInspectionNumber(ctx, h.otherDoctor, 1, "")
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	_, err = h.engine.Queries.GetByInspectionNumber(ctx, h.doctor, 0, "")
	assert.True(t, httperr.IsBusiness(err, "invalid_inspection_number"))

	_, err = h.engine.Queries.GetByInspectionNumber(ctx, h.doctor, 1, "02/05/2024")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestTodaySummaryAndCounts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	pending := h.book(t, h.patient, "2024-05-01", "09:00")
	confirmed := h.book(t, h.patient, "2024-05-01", "10:00")
	cancelled := h.book(t, h.patient, "2024-05-01", "11:00")
	h.book(t, h.patient, "2024-05-02", "09:00")

	_, err := h.engine.Confirm.Execute(ctx, h.doctor, confirmed.ID)
	require.NoError(t, err)
	_, err = h.engine.Cancel.Execute(ctx, h.doctor, cancelled.ID)
	require.NoError(t, err)

	summary, err := h.engine.Queries.TodaySummary(ctx, h.doctor)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", summary.Date)
	require.Len(t, summary.Pending, 1)
	assert.Equal(t, pending.ID, summary.Pending[0].ID)
	require.Len(t, summary.Confirmed, 1)
	require.Len(t, summary.Cancelled, 1)
	assert.Empty(t, summary.Completed)

	counts, err := h.engine.Queries.CountByStatus(ctx, h.doctor)
	require.NoError(t, err)
	assert.Equal(t, StatusCounts{Pending: 2, Confirmed: 1, Cancelled: 1, Completed: 0, Total: 4}, *counts)

	_, err = h.engine.Queries.TodaySummary(ctx, h.patient)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
	_, err = h.engine.Queries.CountByStatus(ctx, h.patient)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}
