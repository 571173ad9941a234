package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/dmitrijs2005/jobintake/internal/server/models"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// ChecklistView is the API-facing shape of a checklist record: which
// categories already hold a document.
type ChecklistView struct {
	RecordID string
	Present  map[string]bool
}

type ChecklistService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewChecklistService(db *sql.DB, repomanager repomanager.RepositoryManager) *ChecklistService {
	return &ChecklistService{db: db, repomanager: repomanager}
}

// categoryColumn maps a wire category key to its nullable column on the
// checklist row. The two must stay in sync with the client.
func categoryColumn(c *models.Checklist, key string) (*sql.NullString, bool) {
	switch key {
	case "tenth":
		return &c.Tenth, true
	case "twelfth":
		return &c.Twelfth, true
	case "graduation":
		return &c.Graduation, true
	case "postGraduation":
		return &c.PostGraduation, true
	case "aadhaar":
		return &c.Aadhaar, true
	case "pan":
		return &c.PAN, true
	default:
		return nil, false
	}
}

var categoryKeys = []string{"tenth", "twelfth", "graduation", "postGraduation", "aadhaar", "pan"}

// Lookup returns the candidate's checklist record, or nil when none exists.
func (s *ChecklistService) Lookup(ctx context.Context, email string) (*ChecklistView, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrValidation)
	}

	record, err := s.repomanager.Checklists(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	view := &ChecklistView{RecordID: record.ID, Present: make(map[string]bool, len(categoryKeys))}
	for _, key := range categoryKeys {
		col, _ := categoryColumn(record, key)
		view.Present[key] = col.Valid
	}

	return view, nil
}

// Save upserts the checklist record keyed by email. Categories absent from
// docs stay untouched on an existing row; an unknown category key rejects
// the whole save.
func (s *ChecklistService) Save(ctx context.Context, name, email, phone string, docs map[string]string) error {
	if name == "" || email == "" || phone == "" {
		return fmt.Errorf("%w: name, email and phone are required", common.ErrValidation)
	}

	record := &models.Checklist{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Phone: phone,
	}
	for key, docID := range docs {
		col, ok := categoryColumn(record, key)
		if !ok {
			return fmt.Errorf("%w: unknown category %q", common.ErrValidation, key)
		}
		*col = sql.NullString{String: docID, Valid: true}
	}

	_, err := s.repomanager.Checklists(s.db).Upsert(ctx, record)
	return err
}
