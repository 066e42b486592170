package models

// LeadRecord is the denormalized view of one subject enrollment: the
// student's personal fields joined with the subject, career and enrollment
// year reachable from the enrollment id.
type LeadRecord struct {
	ID            int64  `db:"id" json:"id"`
	DNI           string `db:"dni" json:"dni"`
	Name          string `db:"name" json:"name"`
	Email         string `db:"email" json:"email"`
	Phone         string `db:"phone" json:"phone"`
	Address       string `db:"address" json:"address"`
	Subject       string `db:"subject" json:"subject"`
	ClassDuration int    `db:"class_duration" json:"class_duration"`
	EnrollTimes   int    `db:"enroll_times" json:"enroll_times"`
	Career        string `db:"career" json:"career"`
	YearEnroll    int    `db:"year_enroll" json:"year_enroll"`
}
