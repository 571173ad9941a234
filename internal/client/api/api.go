// Package api defines the remote record-store contract consumed by the
// intake workflows, plus its HTTP implementation. The workflows never talk
// to the network directly; everything goes through Client so tests can
// substitute fakes.
package api

import (
	"context"

	"github.com/dmitrijs2005/jobintake/internal/client/models"
)

// DraftPayload is the wire form of one draft row in a batch save. The full
// draft set is always submitted, incomplete rows included; the server
// decides which rows qualify for persistence.
type DraftPayload struct {
	ClientIndex      int    `json:"clientIndex"`
	Employer         string `json:"employerName"`
	Role             string `json:"jobRole"`
	Responsibilities string `json:"keyResponsibilities"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	GapReason        string `json:"reasonOfGap"`
}

// Client is the remote collaborator boundary. Every call either resolves or
// fails exactly once; no implementation retries on its own.
type Client interface {
	// CountExistingRows sizes the initial draft set for the given email.
	CountExistingRows(ctx context.Context, email string) (int, error)

	// BatchSaveDrafts submits the full draft set and returns results only
	// for the rows the server accepted.
	BatchSaveDrafts(ctx context.Context, name, email string, drafts []DraftPayload) ([]models.SaveResult, error)

	// UploadRawFile creates an unlinked document and returns its id.
	UploadRawFile(ctx context.Context, fileName, base64Data string) (string, error)

	// AttachDocument links an uploaded document to an owning record.
	AttachDocument(ctx context.Context, ownerRecordID, documentID string) error

	// ListFilesForOwner returns the current document set for a record.
	ListFilesForOwner(ctx context.Context, ownerRecordID string) ([]models.FileRef, error)

	// DeleteDocument removes a document, scoped to its owning record.
	DeleteDocument(ctx context.Context, documentID, ownerRecordID string) error

	// LookupRecordByEmail returns the candidate's document record, or nil
	// when none exists.
	LookupRecordByEmail(ctx context.Context, email string) (*models.ChecklistRecord, error)

	// SaveChecklist writes the accumulated category→document ids together
	// with the candidate profile in one combined call.
	SaveChecklist(ctx context.Context, profile models.Profile, docIDs map[models.Category]string) error

	// CreateLeadWithAttachment files a job application with a resume. A
	// repeat application fails with common.ErrDuplicateApplication.
	CreateLeadWithAttachment(ctx context.Context, lead models.LeadForm) (string, error)
}
