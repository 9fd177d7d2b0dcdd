package shared_test

import (
	"testing"

	"innsync/shared"
	"innsync/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total yields one page",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "exact multiple",
			total:    20,
			limit:    10,
			expected: 2,
		},
		{
			name:     "partial page rounds up",
			total:    21,
			limit:    10,
			expected: 3,
		},
		{
			name:     "zero limit yields one page",
			total:    5,
			limit:    0,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking", "get", "1001"); got != "booking:get:1001" {
		t.Errorf("unexpected cache key: %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "synced_at", SortDir: "DESC"}

	a := shared.BuildCacheKeyWithQuery("booking:gets", params, dto.FilterGroup{})

	params.Page = 2
	b := shared.BuildCacheKeyWithQuery("booking:gets", params, dto.FilterGroup{})

	if a == b {
		t.Error("distinct query params must produce distinct cache keys")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(1001), "id", "bookings")

	if len(group.Filters) != 1 {
		t.Fatalf("expected one filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected a dto.Filter")
	}

	if filter.Field != "id" || filter.Table != "bookings" || filter.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", filter)
	}
}
