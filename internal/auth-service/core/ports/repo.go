package ports

import (
	"context"

	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/domain/models"
)

type IAuthRepo interface {
	Create(ctx context.Context, user models.User) (string, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	GetOrCreateByGoogle(ctx context.Context, user models.User) (models.User, error)
}
