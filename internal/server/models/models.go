// Package models defines the server-side database entities of the intake
// record store.
package models

import (
	"database/sql"
	"time"
)

// Candidate is the person an employment history belongs to. Email is the
// natural key; one candidate owns many experiences.
type Candidate struct {
	ID    string
	Name  string
	Email string
}

// Experience is one persisted employment record.
type Experience struct {
	ID               string
	CandidateID      string
	Employer         string
	Role             string
	Responsibilities string
	StartDate        time.Time
	EndDate          time.Time
	GapReason        string
}

// Document is one uploaded file. OwnerRecordID is empty until the document
// is attached to an owning record; unattached documents are invisible to
// listings.
type Document struct {
	ID            string
	OwnerRecordID sql.NullString
	Title         string
	StorageKey    string
	CreatedAt     time.Time
}

// Checklist is a candidate's document-checklist record: one row per email,
// one nullable document reference per category.
type Checklist struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Tenth          sql.NullString
	Twelfth        sql.NullString
	Graduation     sql.NullString
	PostGraduation sql.NullString
	Aadhaar        sql.NullString
	PAN            sql.NullString
}

// Lead is one job application. A candidate may apply to many jobs but only
// once per job, enforced on (email, job_id).
type Lead struct {
	ID               string
	JobID            string
	JobName          string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Skills           string
	Experience       string
	Qualification    string
	Location         string
	ResumeDocumentID sql.NullString
}
