package experiences

import (
	"context"

	"github.com/dmitrijs2005/jobintake/internal/server/models"
)

type Repository interface {
	CountByEmail(ctx context.Context, email string) (int, error)
	Create(ctx context.Context, experience *models.Experience) (*models.Experience, error)
	GetByID(ctx context.Context, id string) (*models.Experience, error)
}
