package returns

import (
	"fmt"
	"time"
)

const (
	defaultQueryLimit = 50
	maxQueryLimit     = 200
)

// ReturnsQuery filters listing and statistics reads.
type ReturnsQuery struct {
	IDs         []string
	Statuses    []Status
	Channels    []string
	ReasonCats  []ReasonCategory
	OrderID     string
	CustomerID  string
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

func (q ReturnsQuery) Validate() error {
	if q.Limit < 0 || q.Offset < 0 {
		return fmt.Errorf("%w: limit and offset must not be negative", ErrValidation)
	}
	if q.Limit > maxQueryLimit {
		return fmt.Errorf("%w: limit must not exceed %d", ErrValidation, maxQueryLimit)
	}
	if q.CreatedFrom != nil && q.CreatedTo != nil && q.CreatedFrom.After(*q.CreatedTo) {
		return fmt.Errorf("%w: created_from is after created_to", ErrValidation)
	}
	return nil
}

type ReturnsQueryBuilder struct {
	query ReturnsQuery
}

func NewReturnsQueryBuilder() *ReturnsQueryBuilder {
	return &ReturnsQueryBuilder{query: ReturnsQuery{Limit: defaultQueryLimit}}
}

func (b *ReturnsQueryBuilder) WithIDs(ids ...string) *ReturnsQueryBuilder {
	b.query.IDs = append(b.query.IDs, ids...)
	return b
}

func (b *ReturnsQueryBuilder) WithStatuses(statuses ...Status) *ReturnsQueryBuilder {
	b.query.Statuses = append(b.query.Statuses, statuses...)
	return b
}

func (b *ReturnsQueryBuilder) WithChannels(channels ...string) *ReturnsQueryBuilder {
	b.query.Channels = append(b.query.Channels, channels...)
	return b
}

func (b *ReturnsQueryBuilder) WithReasonCategories(reasons ...ReasonCategory) *ReturnsQueryBuilder {
	b.query.ReasonCats = append(b.query.ReasonCats, reasons...)
	return b
}

func (b *ReturnsQueryBuilder) WithOrderID(id string) *ReturnsQueryBuilder {
	b.query.OrderID = id
	return b
}

func (b *ReturnsQueryBuilder) WithCustomerID(id string) *ReturnsQueryBuilder {
	b.query.CustomerID = id
	return b
}

// WithSearch matches against request number and tracking number.
func (b *ReturnsQueryBuilder) WithSearch(term string) *ReturnsQueryBuilder {
	b.query.Search = term
	return b
}

func (b *ReturnsQueryBuilder) WithCreatedBetween(from, to time.Time) *ReturnsQueryBuilder {
	b.query.CreatedFrom = &from
	b.query.CreatedTo = &to
	return b
}

func (b *ReturnsQueryBuilder) WithLimit(limit int) *ReturnsQueryBuilder {
	b.query.Limit = limit
	return b
}

func (b *ReturnsQueryBuilder) WithOffset(offset int) *ReturnsQueryBuilder {
	b.query.Offset = offset
	return b
}

func (b *ReturnsQueryBuilder) Build() (ReturnsQuery, error) {
	if err := b.query.Validate(); err != nil {
		return ReturnsQuery{}, err
	}
	return b.query, nil
}

// StatusCount is one row of the statistics breakdown.
type StatusCount struct {
	Status Status `json:"status"`
	Count  int64  `json:"count"`
}

// Statistics aggregates the returns currently in the system.
type Statistics struct {
	Total         int64         `json:"total"`
	ByStatus      []StatusCount `json:"by_status"`
	PendingReview int64         `json:"pending_review"`
	InProgress    int64         `json:"in_progress"`
	Completed     int64         `json:"completed"`
	Disputed      int64         `json:"disputed"`
	TotalRefunded float64       `json:"total_refunded"`
	AvgCloseHours float64       `json:"avg_close_hours"`
}
