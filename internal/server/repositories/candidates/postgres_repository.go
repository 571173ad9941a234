package candidates

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

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	query :=
		`SELECT id, name, email FROM candidates
		 WHERE email = $1
		 `

	candidate := &models.Candidate{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&candidate.ID, &candidate.Name, &candidate.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return candidate, nil
}

// Upsert creates the candidate keyed by email, or refreshes the stored name
// when the row already exists. The resulting id is returned either way.
func (r *PostgresRepository) Upsert(ctx context.Context, candidate *models.Candidate) (*models.Candidate, error) {
	query :=
		`INSERT INTO candidates (id, name, email)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, candidate.ID, candidate.Name, candidate.Email).Scan(&candidate.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return candidate, nil
}
