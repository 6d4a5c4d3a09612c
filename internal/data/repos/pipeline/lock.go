package pipeline

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forShare takes row-level share locks on postgres so referenced rows cannot
// change until the surrounding transaction commits. SQLite serialises writers
// itself and has no locking clause.
func forShare(db *gorm.DB) *gorm.DB {
	if db == nil || db.Dialector == nil || db.Dialector.Name() != "postgres" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "SHARE"})
}

func orderBy(col string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db.Order(col) }
}
