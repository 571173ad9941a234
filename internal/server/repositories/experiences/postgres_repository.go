package experiences

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

func (r *PostgresRepository) CountByEmail(ctx context.Context, email string) (int, error) {
	query :=
		`SELECT count(e.id) FROM experiences e
		 JOIN candidates c ON c.id = e.candidate_id
		 WHERE c.email = $1
		 `

	var count int
	err := r.db.QueryRowContext(ctx, query, email).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Create(ctx context.Context, experience *models.Experience) (*models.Experience, error) {
	query :=
		`INSERT INTO experiences (id, candidate_id, employer, role, responsibilities, start_date, end_date, gap_reason)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		experience.ID, experience.CandidateID, experience.Employer, experience.Role,
		experience.Responsibilities, experience.StartDate, experience.EndDate, experience.GapReason).Scan(&experience.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return experience, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	query :=
		`SELECT id, candidate_id, employer, role, responsibilities, start_date, end_date, gap_reason
		 FROM experiences
		 WHERE id = $1
		 `

	e := &models.Experience{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.CandidateID, &e.Employer, &e.Role, &e.Responsibilities, &e.StartDate, &e.EndDate, &e.GapReason)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}
