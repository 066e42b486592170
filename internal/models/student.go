package models

import "time"

// Student is a lead: a prospective or enrolled student. The DNI is the
// natural key; the surrogate id is assigned on creation and never changes.
type Student struct {
	ID        int64     `db:"id" json:"student_id"`
	DNI       string    `db:"dni" json:"dni"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}
