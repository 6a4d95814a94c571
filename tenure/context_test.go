package tenure_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeonbo/tenure-engine/tenure"
)

func TestContext_AddService_RejectsOverlap(t *testing.T) {
	today := d(2026, time.March, 1)
	ctx := tenure.NewContext()

	first := tenure.ServiceInterval{
		Span:   tenure.ClosedSpan(d(2020, time.March, 1), d(2022, time.February, 28)),
		Region: tenure.RegionChungju,
	}
	require.NoError(t, ctx.AddService(today, first))

	// Shares 2022-02-01..2022-02-28 with the first posting.
	second := tenure.ServiceInterval{
		Span:   tenure.ClosedSpan(d(2022, time.February, 1), d(2024, time.February, 29)),
		Region: tenure.RegionChungju,
	}
	err := ctx.AddService(today, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, tenure.ErrOverlap)

	var overlap *tenure.OverlapError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, "service", overlap.Kind)
	assert.Equal(t, 0, overlap.ExistingIndex)

	// The rejected interval must not have been stored.
	assert.Len(t, ctx.Services, 1)
}

func TestContext_AddLeave_OverlapCheckedAgainstLeavesOnly(t *testing.T) {
	// A leave may coincide with a service posting (leave happens during
	// a posting); only leave-leave overlap is invalid.
	today := d(2026, time.March, 1)
	ctx := tenure.NewContext()

	require.NoError(t, ctx.AddService(today, tenure.ServiceInterval{
		Span:   tenure.ClosedSpan(d(2020, time.March, 1), d(2024, time.February, 29)),
		Region: tenure.RegionChungju,
	}))
	require.NoError(t, ctx.AddLeave(today, tenure.LeaveInterval{
		Span: tenure.ClosedSpan(d(2021, time.March, 1), d(2022, time.February, 28)),
		Type: tenure.LeaveParental,
	}))

	err := ctx.AddLeave(today, tenure.LeaveInterval{
		Span: tenure.ClosedSpan(d(2022, time.February, 28), d(2022, time.June, 30)),
		Type: tenure.LeaveSick,
	})
	assert.ErrorIs(t, err, tenure.ErrOverlap)
	assert.Len(t, ctx.Leaves, 1)
}

func TestContext_AddService_RejectsInvalidSpan(t *testing.T) {
	today := d(2026, time.March, 1)
	ctx := tenure.NewContext()

	err := ctx.AddService(today, tenure.ServiceInterval{
		Span: tenure.ClosedSpan(d(2024, time.March, 1), d(2024, time.February, 1)),
	})
	assert.ErrorIs(t, err, tenure.ErrInvalidSpan)
	assert.Empty(t, ctx.Services)
}

func TestContext_OngoingIntervalsResolveAtEvaluation(t *testing.T) {
	today := d(2026, time.March, 1)
	ctx := tenure.NewContext()

	require.NoError(t, ctx.AddLeave(today, tenure.LeaveInterval{
		Span: tenure.OngoingSpan(d(2025, time.September, 1)),
		Type: tenure.LeaveParental,
	}))

	// An ongoing leave overlaps anything after its start.
	err := ctx.AddLeave(today, tenure.LeaveInterval{
		Span: tenure.ClosedSpan(d(2026, time.January, 1), d(2026, time.January, 31)),
		Type: tenure.LeaveSick,
	})
	assert.ErrorIs(t, err, tenure.ErrOverlap)

	summary := ctx.Summarize(today)
	assert.Equal(t, tenure.DaysInclusive(d(2025, time.September, 1), today), summary.TotalDays)
}

func TestContext_RemoveByIndex(t *testing.T) {
	today := d(2026, time.March, 1)
	ctx := tenure.NewContext()

	require.NoError(t, ctx.AddLeave(today, tenure.LeaveInterval{
		Span: tenure.ClosedSpan(d(2020, time.March, 1), d(2020, time.June, 30)),
		Type: tenure.LeaveSick,
	}))
	require.NoError(t, ctx.AddLeave(today, tenure.LeaveInterval{
		Span: tenure.ClosedSpan(d(2021, time.March, 1), d(2021, time.June, 30)),
		Type: tenure.LeaveParental,
	}))

	require.NoError(t, ctx.RemoveLeave(0))
	require.Len(t, ctx.Leaves, 1)
	assert.Equal(t, tenure.LeaveParental, ctx.Leaves[0].Type)

	assert.ErrorIs(t, ctx.RemoveLeave(1), tenure.ErrIndexOutOfRange)
	assert.ErrorIs(t, ctx.RemoveLeave(-1), tenure.ErrIndexOutOfRange)
	assert.ErrorIs(t, ctx.RemoveService(0), tenure.ErrIndexOutOfRange)
}

func TestContext_ClearKeepsCurrentPost(t *testing.T) {
	today := d(2026, time.March, 1)
	ctx := tenure.NewContext()
	rules := tenure.DefaultRules()

	require.NoError(t, ctx.SetCurrentPost(rules, tenure.RegionChungju, tenure.SubRegionNone, d(2024, time.March, 1)))
	require.NoError(t, ctx.AddService(today, tenure.ServiceInterval{
		Span:   tenure.ClosedSpan(d(2020, time.March, 1), d(2024, time.February, 29)),
		Region: tenure.RegionChungju,
	}))

	ctx.Clear()

	assert.Empty(t, ctx.Services)
	assert.Empty(t, ctx.Leaves)
	assert.True(t, ctx.Ready())
	assert.Equal(t, tenure.RegionChungju, ctx.Region)
}

func TestContext_SetCurrentPost_SubRegionHandling(t *testing.T) {
	rules := tenure.DefaultRules()
	transfer := d(2024, time.March, 1)

	t.Run("sub-area region defaults to urban", func(t *testing.T) {
		ctx := tenure.NewContext()
		require.NoError(t, ctx.SetCurrentPost(rules, tenure.RegionCheongju, tenure.SubRegionNone, transfer))
		assert.Equal(t, tenure.SubRegionUrban, ctx.SubRegion)
	})

	t.Run("sub-area region keeps explicit rural", func(t *testing.T) {
		ctx := tenure.NewContext()
		require.NoError(t, ctx.SetCurrentPost(rules, tenure.RegionCheongju, tenure.SubRegionRural, transfer))
		assert.Equal(t, tenure.SubRegionRural, ctx.SubRegion)
	})

	t.Run("plain region clears sub-region", func(t *testing.T) {
		ctx := tenure.NewContext()
		require.NoError(t, ctx.SetCurrentPost(rules, tenure.RegionChungju, tenure.SubRegionRural, transfer))
		assert.Equal(t, tenure.SubRegionNone, ctx.SubRegion)
	})

	t.Run("unknown region rejected", func(t *testing.T) {
		ctx := tenure.NewContext()
		err := ctx.SetCurrentPost(rules, tenure.RegionKey("nowhere"), tenure.SubRegionNone, transfer)
		assert.ErrorIs(t, err, tenure.ErrUnknownRegion)
		assert.False(t, ctx.Ready())
	})
}

func TestContext_Summarize(t *testing.T) {
	today := d(2026, time.March, 1)
	ctx := tenure.NewContext()

	require.NoError(t, ctx.AddService(today, tenure.ServiceInterval{
		Span:   tenure.ClosedSpan(d(2020, time.March, 1), d(2020, time.March, 1).AddDays(729)),
		Region: tenure.RegionChungju,
	}))
	require.NoError(t, ctx.AddLeave(today, tenure.LeaveInterval{
		Span: tenure.ClosedSpan(d(2023, time.March, 1), d(2023, time.March, 1).AddDays(364)),
		Type: tenure.LeaveParental,
	}))
	require.NoError(t, ctx.AddLeave(today, tenure.LeaveInterval{
		Span: tenure.ClosedSpan(d(2025, time.March, 1), d(2025, time.March, 1).AddDays(99)),
		Type: tenure.LeaveSick,
	}))

	s := ctx.Summarize(today)

	assert.Equal(t, 1, s.ServiceCount)
	assert.Equal(t, 2, s.LeaveCount)
	assert.Equal(t, 1, s.OneYearPlusLeaves)
	assert.Equal(t, 730+365+100, s.TotalDays)
	assert.Equal(t, "3.27", s.ApproxYears.StringFixed(2))
}

func TestContext_LateErrorsLeaveEarlierRecordsIntact(t *testing.T) {
	// Errors are not transactions over the whole batch: a rejected
	// insertion leaves everything inserted before it in place.
	today := d(2026, time.March, 1)
	ctx := tenure.NewContext()

	require.NoError(t, ctx.AddService(today, tenure.ServiceInterval{
		Span:   tenure.ClosedSpan(d(2018, time.March, 1), d(2020, time.February, 29)),
		Region: tenure.RegionJecheon,
	}))
	err := ctx.AddService(today, tenure.ServiceInterval{
		Span: tenure.ClosedSpan(d(2021, time.March, 1), d(2020, time.March, 1)),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, tenure.ErrInvalidSpan))
	assert.Len(t, ctx.Services, 1)
}
