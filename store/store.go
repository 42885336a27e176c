package store

import "gorm.io/gorm"

// Store is the data access layer. Every operation maps to a single SQL
// statement against one table; no operation spans entities and no
// multi-statement transactions are used. Errors from gorm propagate
// unchanged, except record-not-found on updates, which is reported as an
// empty (nil) result rather than an error.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}
