package checklists

import (
	"context"

	"github.com/dmitrijs2005/jobintake/internal/server/models"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*models.Checklist, error)
	Upsert(ctx context.Context, checklist *models.Checklist) (*models.Checklist, error)
}
