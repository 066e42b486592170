package models

// Career is a program of study.
type Career struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Subject is a course offering. ClassDuration is expressed in hours.
type Subject struct {
	ID            int64  `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	ClassDuration int    `db:"class_duration" json:"class_duration"`
}

