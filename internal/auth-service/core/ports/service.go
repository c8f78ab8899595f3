package ports

import (
	"context"

	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/domain/dto"
)

type IAuthService interface {
	Register(ctx context.Context, regReq dto.UserRegistrationRequest) (dto.UserResponse, string, error)
	Login(ctx context.Context, authReq dto.UserAuthRequest) (dto.UserResponse, string, error)
	Me(ctx context.Context, userID string) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, patch dto.ProfileUpdateRequest) (dto.UserResponse, error)
	GoogleLogin(ctx context.Context, code string) (dto.UserResponse, string, error)
}

// IOAuthClient exchanges an authorization code for the user's Google profile.
type IOAuthClient interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (dto.GoogleProfile, error)
}
