// Package record provides the query options shared by all record stores.
package record

import "fmt"

// Option applies a modification to a Query.
type Option func(Query) Query

// Query holds conditions, ordering, and pagination for store lookups.
type Query struct {
	conditions []Condition
	orders     []Order
	limit      int
	offset     int
}

// Build creates a Query from a set of options.
func Build(options ...Option) Query {
	q := Query{}
	for _, opt := range options {
		q = opt(q)
	}
	return q
}

// Conditions returns the query conditions.
func (q Query) Conditions() []Condition {
	result := make([]Condition, len(q.conditions))
	copy(result, q.conditions)
	return result
}

// Orders returns the query ordering specifications.
func (q Query) Orders() []Order {
	result := make([]Order, len(q.orders))
	copy(result, q.orders)
	return result
}

// LimitValue returns the limit (0 means no limit).
func (q Query) LimitValue() int {
	return q.limit
}

// OffsetValue returns the offset.
func (q Query) OffsetValue() int {
	return q.offset
}

// CompareOp selects the SQL comparison used by a Condition.
type CompareOp int

// CompareOp values.
const (
	OpEqual CompareOp = iota
	OpNotEqual
	OpLessThanOrEqual
	OpGreaterThanOrEqual
	OpIn
)

// Condition represents a single query condition.
type Condition struct {
	field string
	op    CompareOp
	value any
}

// Field returns the condition field name.
func (c Condition) Field() string { return c.field }

// Op returns the comparison operator.
func (c Condition) Op() CompareOp { return c.op }

// Value returns the condition value.
func (c Condition) Value() any { return c.value }

// String returns a readable representation.
func (c Condition) String() string {
	switch c.op {
	case OpNotEqual:
		return fmt.Sprintf("%s != %v", c.field, c.value)
	case OpLessThanOrEqual:
		return fmt.Sprintf("%s <= %v", c.field, c.value)
	case OpGreaterThanOrEqual:
		return fmt.Sprintf("%s >= %v", c.field, c.value)
	case OpIn:
		return fmt.Sprintf("%s IN %v", c.field, c.value)
	default:
		return fmt.Sprintf("%s = %v", c.field, c.value)
	}
}

// Order represents a sort specification.
type Order struct {
	field     string
	ascending bool
}

// Field returns the order field name.
func (o Order) Field() string { return o.field }

// Ascending returns true for ASC, false for DESC.
func (o Order) Ascending() bool { return o.ascending }

// --- Generic options reused across all stores ---

// WithCondition adds a field = value equality condition.
// Domain packages use this to define their own typed options.
func WithCondition(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, op: OpEqual, value: value})
		return q
	}
}

// WithConditionNot adds a field != value condition.
func WithConditionNot(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, op: OpNotEqual, value: value})
		return q
	}
}

// WithConditionAtMost adds a field <= value condition.
func WithConditionAtMost(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, op: OpLessThanOrEqual, value: value})
		return q
	}
}

// WithConditionAtLeast adds a field >= value condition.
func WithConditionAtLeast(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, op: OpGreaterThanOrEqual, value: value})
		return q
	}
}

// WithConditionIn adds a field IN (values) condition.
func WithConditionIn(field string, values any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, op: OpIn, value: values})
		return q
	}
}

// WithOrderAsc sorts results by the given column ascending.
func WithOrderAsc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: true})
		return q
	}
}

// WithOrderDesc sorts results by the given column descending.
func WithOrderDesc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field})
		return q
	}
}

// WithLimit sets the maximum number of results.
func WithLimit(n int) Option {
	return func(q Query) Query {
		q.limit = n
		return q
	}
}

// WithOffset sets the result offset.
func WithOffset(n int) Option {
	return func(q Query) Query {
		q.offset = n
		return q
	}
}
