package timeentry_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/domain/timeentry"
	"github.com/rpggio/tradeledger/internal/repository/mocks"
)

func strPtr(s string) *string { return &s }

func TestMinutes(t *testing.T) {
	start := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  *time.Time
		want int64
	}{
		{"open", nil, 0},
		{"ninety minutes", ptrTime(start.Add(90 * time.Minute)), 90},
		{"rounds half up", ptrTime(start.Add(30 * time.Second)), 1},
		{"rounds down", ptrTime(start.Add(29 * time.Second)), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, timeentry.Minutes(start, tc.end))
		})
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestCost(t *testing.T) {
	rate := decimal.NewNullDecimal(decimal.NewFromInt(60))
	require.Equal(t, "90", timeentry.Cost(rate, 90).String())
	require.Equal(t, "0.33", timeentry.Cost(decimal.NewNullDecimal(decimal.NewFromInt(20)), 1).String())
	require.True(t, timeentry.Cost(decimal.NullDecimal{}, 90).IsZero())
	require.True(t, timeentry.Cost(rate, 0).IsZero())
}

func TestTimeEntryService_Create(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TimeEntryRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*timeentry.TimeEntry")).Return(nil)

	svc := timeentry.NewService(repo, nil)
	e, err := svc.Create(ctx, 1, timeentry.CreateRequest{
		ProjectID:  4,
		StartTime:  "2025-01-06T08:00:00Z",
		EndTime:    strPtr("2025-01-06T09:30:00Z"),
		HourlyRate: strPtr("60"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(90), e.Duration)
	require.Equal(t, "90", e.TotalCost.String())
	require.Equal(t, int64(4), e.ProjectID)
}

func TestTimeEntryService_CreateOpenEntry(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TimeEntryRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := timeentry.NewService(repo, nil)
	e, err := svc.Create(ctx, 1, timeentry.CreateRequest{ProjectID: 4, StartTime: "2025-01-06T08:00:00Z"})
	require.NoError(t, err)
	require.Zero(t, e.Duration)
	require.True(t, e.TotalCost.IsZero())
	require.Nil(t, e.EndTime)
}

func TestTimeEntryService_CreateRejectsEndBeforeStart(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TimeEntryRepository{}

	svc := timeentry.NewService(repo, nil)
	_, err := svc.Create(ctx, 1, timeentry.CreateRequest{
		ProjectID: 4,
		StartTime: "2025-01-06T09:00:00Z",
		EndTime:   strPtr("2025-01-06T08:00:00Z"),
	})
	require.ErrorIs(t, err, timeentry.ErrEndBeforeStart)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
