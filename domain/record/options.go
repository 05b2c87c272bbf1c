package record

import "time"

// WithID filters by the "id" column.
func WithID(id int64) Option {
	return WithCondition("id", id)
}

// WithProductID filters by the "product_id" column.
func WithProductID(id int64) Option {
	return WithCondition("product_id", id)
}

// WithRequirementID filters by the "requirement_id" column.
func WithRequirementID(id int64) Option {
	return WithCondition("requirement_id", id)
}

// WithReqID filters by the "req_id" column (catalog identifier, not row id).
func WithReqID(reqID string) Option {
	return WithCondition("req_id", reqID)
}

// WithActive filters requirements by the "active" flag.
func WithActive(active bool) Option {
	flag := 0
	if active {
		flag = 1
	}
	return WithCondition("active", flag)
}

// WithStatusNot filters out rows whose "status" column equals the given value.
func WithStatusNot(status string) Option {
	return WithConditionNot("status", status)
}

// WithRiskScoreAtLeast filters by a minimum "risk_score".
func WithRiskScoreAtLeast(score int) Option {
	return WithConditionAtLeast("risk_score", score)
}

// WithDueOnOrBefore filters rows whose "due_date" is on or before the given
// day. Due dates are stored as ISO "YYYY-MM-DD" strings, so lexicographic
// comparison matches chronological order.
func WithDueOnOrBefore(t time.Time) Option {
	return WithConditionAtMost("due_date", t.Format("2006-01-02"))
}

// LatestFirst orders by the "id" column descending: the display convention
// for append-only history, where the most recent insertion is authoritative.
func LatestFirst() Option {
	return WithOrderDesc("id")
}
