package models

// PaginationQuery carries page/limit query parameters, 1-indexed
type PaginationQuery struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// PaginatedResult is the envelope the paginated list endpoints return
type PaginatedResult struct {
	Data  interface{} `json:"data"`
	Total int64       `json:"total"`
	Page  int         `json:"page,omitempty"`
	Limit int         `json:"limit,omitempty"`
}

// Normalize applies the defaults (page=1, limit=10) and clamps limit to 100
func (q *PaginationQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

// Offset computes the row offset for the normalized query
func (q *PaginationQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
