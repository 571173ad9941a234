package leads

import (
	"context"

	"github.com/dmitrijs2005/jobintake/internal/server/models"
)

type Repository interface {
	ExistsByEmailAndJob(ctx context.Context, email, jobID string) (bool, error)
	Create(ctx context.Context, lead *models.Lead) (*models.Lead, error)
}
