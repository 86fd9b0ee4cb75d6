package model

import "time"

// Metadata is the audit block every table carries.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}

// NewMetadata stamps a new row as created and last modified by user at the same instant.
func NewMetadata(user string, at time.Time) Metadata {
	return Metadata{
		CreatedAt:  at,
		ModifiedAt: at,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

// Modified reports whether the row was changed after it was inserted.
func (m Metadata) Modified() bool {
	return m.ModifiedAt.After(m.CreatedAt)
}
