package domain_test

import (
	"testing"
	"time"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want domain.HistoryBucket
	}{
		{
			name: "mid-month UTC date",
			date: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			want: domain.HistoryBucket{Day: 15, Month: 2, Year: 2024},
		},
		{
			name: "january maps to month index 0",
			date: time.Date(2023, time.January, 1, 10, 30, 0, 0, time.UTC),
			want: domain.HistoryBucket{Day: 1, Month: 0, Year: 2023},
		},
		{
			name: "december maps to month index 11",
			date: time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC),
			want: domain.HistoryBucket{Day: 31, Month: 11, Year: 2023},
		},
		{
			name: "non-UTC timestamp is bucketed by its UTC calendar day",
			// 2024-06-01 01:30 +05:00 is 2024-05-31 20:30 UTC.
			date: time.Date(2024, time.June, 1, 1, 30, 0, 0, time.FixedZone("UTC+5", 5*3600)),
			want: domain.HistoryBucket{Day: 31, Month: 4, Year: 2024},
		},
		{
			name: "negative offset rolls forward across midnight",
			// 2024-02-29 22:30 -03:00 is 2024-03-01 01:30 UTC.
			date: time.Date(2024, time.February, 29, 22, 30, 0, 0, time.FixedZone("UTC-3", -3*3600)),
			want: domain.HistoryBucket{Day: 1, Month: 2, Year: 2024},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.BucketFor(tt.date))
		})
	}
}

func TestTransactionType_Valid(t *testing.T) {
	assert.True(t, domain.Income.Valid())
	assert.True(t, domain.Expense.Valid())
	assert.False(t, domain.TransactionType("").Valid())
	assert.False(t, domain.TransactionType("INCOME").Valid())
	assert.False(t, domain.TransactionType("transfer").Valid())
}
