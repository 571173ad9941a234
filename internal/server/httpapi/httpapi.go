// Package httpapi exposes the record store over a JSON HTTP API. Handlers
// translate between wire payloads and the service layer; all error
// responses use a uniform {error, code} envelope.
package httpapi

import (
	"context"

	"github.com/dmitrijs2005/jobintake/internal/server/services"
)

// ExperienceService is the slice of the service layer the experience
// handlers need.
type ExperienceService interface {
	Count(ctx context.Context, email string) (int, error)
	BatchSave(ctx context.Context, name, email string, rows []services.DraftRow) ([]services.SaveResult, error)
}

type DocumentService interface {
	Upload(ctx context.Context, fileName, base64Data string) (string, error)
	Attach(ctx context.Context, ownerRecordID, documentID string) error
	List(ctx context.Context, ownerRecordID string) ([]services.FileInfo, error)
	Delete(ctx context.Context, documentID, ownerRecordID string) error
}

type ChecklistService interface {
	Lookup(ctx context.Context, email string) (*services.ChecklistView, error)
	Save(ctx context.Context, name, email, phone string, docs map[string]string) error
}

type LeadService interface {
	Create(ctx context.Context, in services.LeadInput) (string, error)
}
