// Package services implements the record-store operations behind the HTTP
// API: experience batch saves, the document workflow, checklists and leads.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/dmitrijs2005/jobintake/internal/dbx"
	"github.com/dmitrijs2005/jobintake/internal/server/models"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// DraftRow is one submitted draft. ClientIndex is opaque to the server: it
// is echoed back in the matching SaveResult and never stored.
type DraftRow struct {
	ClientIndex      int
	Employer         string
	Role             string
	Responsibilities string
	StartDate        string
	EndDate          string
	GapReason        string
}

// SaveResult reports one accepted row.
type SaveResult struct {
	ClientIndex int
	RecordID    string
}

type ExperienceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewExperienceService(db *sql.DB, repomanager repomanager.RepositoryManager) *ExperienceService {
	return &ExperienceService{db: db, repomanager: repomanager}
}

// Count returns how many experiences are already on file for the email.
func (s *ExperienceService) Count(ctx context.Context, email string) (int, error) {
	if email == "" {
		return 0, fmt.Errorf("%w: email is required", common.ErrValidation)
	}

	return s.repomanager.Experiences(s.db).CountByEmail(ctx, email)
}

// BatchSave persists the qualifying rows of a submitted draft set in one
// transaction. A row qualifies when both dates are present and parseable;
// the rest are skipped silently, which is why the response may cover only a
// subset of the request. The candidate row is upserted by email first.
func (s *ExperienceService) BatchSave(ctx context.Context, name, email string, rows []DraftRow) ([]SaveResult, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrValidation)
	}

	type qualified struct {
		row   DraftRow
		start time.Time
		end   time.Time
	}
	var accepted []qualified
	for _, row := range rows {
		start, err := time.Parse(common.DateLayout, row.StartDate)
		if err != nil {
			continue
		}
		end, err := time.Parse(common.DateLayout, row.EndDate)
		if err != nil {
			continue
		}
		accepted = append(accepted, qualified{row: row, start: start, end: end})
	}

	var results []SaveResult

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		candidateRepo := s.repomanager.Candidates(tx)
		experienceRepo := s.repomanager.Experiences(tx)

		candidate, err := candidateRepo.Upsert(ctx, &models.Candidate{
			ID:    uuid.NewString(),
			Name:  name,
			Email: email,
		})
		if err != nil {
			return err
		}

		for _, q := range accepted {
			e := &models.Experience{
				ID:               uuid.NewString(),
				CandidateID:      candidate.ID,
				Employer:         q.row.Employer,
				Role:             q.row.Role,
				Responsibilities: q.row.Responsibilities,
				StartDate:        q.start,
				EndDate:          q.end,
				GapReason:        q.row.GapReason,
			}
			if _, err := experienceRepo.Create(ctx, e); err != nil {
				return err
			}
			results = append(results, SaveResult{ClientIndex: q.row.ClientIndex, RecordID: e.ID})
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("error saving experiences: %v", err)
	}

	return results, nil
}
