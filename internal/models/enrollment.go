package models

import "time"

// StudentCareer is a student's enrollment in a career.
// (student_id, career_id) is unique.
type StudentCareer struct {
	ID         int64     `db:"id" json:"id"`
	StudentID  int64     `db:"student_id" json:"student_id"`
	CareerID   int64     `db:"career_id" json:"career_id"`
	YearEnroll int       `db:"year_enroll" json:"year_enroll"`
	CreatedAt  time.Time `db:"created_at" json:"-"`
}
