package checklists

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/dmitrijs2005/jobintake/internal/dbx"
	"github.com/dmitrijs2005/jobintake/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Checklist, error) {
	query :=
		`SELECT id, name, email, phone, tenth, twelfth, graduation, post_graduation, aadhaar, pan
		 FROM checklists
		 WHERE email = $1
		 `

	c := &models.Checklist{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone,
		&c.Tenth, &c.Twelfth, &c.Graduation, &c.PostGraduation, &c.Aadhaar, &c.PAN)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

// Upsert writes the checklist keyed by email. Category columns use COALESCE
// so a save that brings only some categories never blanks the ones already
// on file.
func (r *PostgresRepository) Upsert(ctx context.Context, checklist *models.Checklist) (*models.Checklist, error) {
	query :=
		`INSERT INTO checklists (id, name, email, phone, tenth, twelfth, graduation, post_graduation, aadhaar, pan)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (email) DO UPDATE SET
		   name = EXCLUDED.name,
		   phone = EXCLUDED.phone,
		   tenth = COALESCE(EXCLUDED.tenth, checklists.tenth),
		   twelfth = COALESCE(EXCLUDED.twelfth, checklists.twelfth),
		   graduation = COALESCE(EXCLUDED.graduation, checklists.graduation),
		   post_graduation = COALESCE(EXCLUDED.post_graduation, checklists.post_graduation),
		   aadhaar = COALESCE(EXCLUDED.aadhaar, checklists.aadhaar),
		   pan = COALESCE(EXCLUDED.pan, checklists.pan)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		checklist.ID, checklist.Name, checklist.Email, checklist.Phone,
		checklist.Tenth, checklist.Twelfth, checklist.Graduation,
		checklist.PostGraduation, checklist.Aadhaar, checklist.PAN).Scan(&checklist.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return checklist, nil
}
