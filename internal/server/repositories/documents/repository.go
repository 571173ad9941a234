package documents

import (
	"context"

	"github.com/dmitrijs2005/jobintake/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, document *models.Document) (*models.Document, error)
	GetByID(ctx context.Context, id string) (*models.Document, error)
	SetOwner(ctx context.Context, id, ownerRecordID string) error
	ListByOwner(ctx context.Context, ownerRecordID string) ([]*models.Document, error)
	Delete(ctx context.Context, id, ownerRecordID string) error
}
