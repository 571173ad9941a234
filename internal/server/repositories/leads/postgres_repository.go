package leads

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobintake/internal/dbx"
	"github.com/dmitrijs2005/jobintake/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ExistsByEmailAndJob(ctx context.Context, email, jobID string) (bool, error) {
	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM leads WHERE email = $1 AND job_id = $2
		 )
		 `

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email, jobID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	query :=
		`INSERT INTO leads (id, job_id, job_name, first_name, last_name, email, phone, skills, experience, qualification, location, resume_document_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		lead.ID, lead.JobID, lead.JobName, lead.FirstName, lead.LastName,
		lead.Email, lead.Phone, lead.Skills, lead.Experience,
		lead.Qualification, lead.Location, lead.ResumeDocumentID).Scan(&lead.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return lead, nil
}
