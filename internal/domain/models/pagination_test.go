package models

import "testing"

func TestPaginationNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        PaginationQuery
		wantPage  int
		wantLimit int
	}{
		{"defaults", PaginationQuery{}, 1, 10},
		{"negative page", PaginationQuery{Page: -3, Limit: 5}, 1, 5},
		{"zero limit", PaginationQuery{Page: 2}, 2, 10},
		{"over cap clamps to cap", PaginationQuery{Page: 1, Limit: 500}, 1, 100},
		{"at cap", PaginationQuery{Page: 1, Limit: 100}, 1, 100},
		{"valid", PaginationQuery{Page: 4, Limit: 25}, 4, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Normalize()
			if q.Page != tt.wantPage || q.Limit != tt.wantLimit {
				t.Fatalf("Normalize() = page %d limit %d, want %d/%d", q.Page, q.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	q := PaginationQuery{Page: 3, Limit: 10}
	q.Normalize()
	if got := q.Offset(); got != 20 {
		t.Fatalf("Offset() = %d, want 20", got)
	}
}
