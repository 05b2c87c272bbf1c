package database

import (
	"fmt"

	"github.com/crastudio/crastudio/domain/record"
	"gorm.io/gorm"
)

// ApplyOptions builds a record.Query from the given options and applies it
// to a GORM session.
func ApplyOptions(db *gorm.DB, options ...record.Option) *gorm.DB {
	q := record.Build(options...)

	db = applyConditions(db, q)

	for _, ord := range q.Orders() {
		dir := "ASC"
		if !ord.Ascending() {
			dir = "DESC"
		}
		db = db.Order(fmt.Sprintf("%s %s", ord.Field(), dir))
	}

	if q.LimitValue() > 0 {
		db = db.Limit(q.LimitValue())
	}

	if q.OffsetValue() > 0 {
		db = db.Offset(q.OffsetValue())
	}

	return db
}

// ApplyConditions applies only WHERE conditions (no limit/offset/order) for
// COUNT queries.
func ApplyConditions(db *gorm.DB, options ...record.Option) *gorm.DB {
	return applyConditions(db, record.Build(options...))
}

func applyConditions(db *gorm.DB, q record.Query) *gorm.DB {
	for _, cond := range q.Conditions() {
		switch cond.Op() {
		case record.OpNotEqual:
			db = db.Where(fmt.Sprintf("%s != ?", cond.Field()), cond.Value())
		case record.OpLessThanOrEqual:
			db = db.Where(fmt.Sprintf("%s <= ?", cond.Field()), cond.Value())
		case record.OpGreaterThanOrEqual:
			db = db.Where(fmt.Sprintf("%s >= ?", cond.Field()), cond.Value())
		case record.OpIn:
			db = db.Where(fmt.Sprintf("%s IN ?", cond.Field()), cond.Value())
		default:
			db = db.Where(fmt.Sprintf("%s = ?", cond.Field()), cond.Value())
		}
	}
	return db
}
