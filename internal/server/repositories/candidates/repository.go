package candidates

import (
	"context"

	"github.com/dmitrijs2005/jobintake/internal/server/models"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*models.Candidate, error)
	Upsert(ctx context.Context, candidate *models.Candidate) (*models.Candidate, error)
}
