// Package models defines the client-side representations of the intake
// workflow: employment drafts, attached documents, checklist items and
// candidate profiles.
package models

import (
	"fmt"

	"github.com/dmitrijs2005/jobintake/internal/common"
)

// FileRef is a previously uploaded and linked document. Identity is
// DocumentID; a FileRef is removed only by explicit deletion.
type FileRef struct {
	DocumentID  string `json:"documentId"`
	Title       string `json:"title"`
	DownloadURL string `json:"downloadUrl"`
}

// DraftEntry is one employment record before and after persistence.
//
// ClientIndex is assigned once from the entry's position in the initial
// batch and never changes; it is the sole cross-reference between local
// state and server responses. RecordID is empty while the entry is a draft
// and is set exactly once, by the batch save coordinator, when the server
// accepts the row.
type DraftEntry struct {
	ClientIndex      int
	Employer         string
	Role             string
	Responsibilities string
	StartDate        string // common.DateLayout, empty until filled
	EndDate          string
	GapReason        string
	ShowGapFlag      bool
	RecordID         string
	Files            []FileRef
}

// Saved reports whether the entry has been accepted by the server.
func (e *DraftEntry) Saved() bool {
	return e.RecordID != ""
}

// Field identifies an editable draft field. Incoming edits dispatch through
// the setter table below instead of assigning by raw field name, so an
// unknown identifier is caught instead of silently dropped.
type Field string

const (
	FieldEmployer         Field = "employer"
	FieldRole             Field = "role"
	FieldResponsibilities Field = "responsibilities"
	FieldStartDate        Field = "startDate"
	FieldEndDate          Field = "endDate"
	FieldGapReason        Field = "gapReason"
)

var fieldSetters = map[Field]func(*DraftEntry, string){
	FieldEmployer:         func(e *DraftEntry, v string) { e.Employer = v },
	FieldRole:             func(e *DraftEntry, v string) { e.Role = v },
	FieldResponsibilities: func(e *DraftEntry, v string) { e.Responsibilities = v },
	FieldStartDate:        func(e *DraftEntry, v string) { e.StartDate = v },
	FieldEndDate:          func(e *DraftEntry, v string) { e.EndDate = v },
	FieldGapReason:        func(e *DraftEntry, v string) { e.GapReason = v },
}

// Set assigns value to the named field. Unknown fields are a validation
// error; nothing is assigned.
func (e *DraftEntry) Set(f Field, value string) error {
	setter, ok := fieldSetters[f]
	if !ok {
		return fmt.Errorf("%w: unknown field %q", common.ErrValidation, string(f))
	}
	setter(e, value)
	return nil
}

// IsDate reports whether edits to the field require a gap recompute.
func (f Field) IsDate() bool {
	return f == FieldStartDate || f == FieldEndDate
}

// SaveResult is one row of the server's batch-save response. It exists only
// during reconciliation and is discarded afterwards.
type SaveResult struct {
	ClientIndex int    `json:"clientIndex"`
	RecordID    string `json:"recordId"`
	Status      string `json:"status"`
}
