package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/domain/models"
	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/myerrors"
	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/ports"
	"github.com/maharjanPranish/NepXplore/internal/config"
	"github.com/maharjanPranish/NepXplore/internal/mylogger"
)

type AuthService struct {
	cfg      *config.Config
	authRepo ports.IAuthRepo
	oauth    ports.IOAuthClient
	mylog    mylogger.Logger
}

func NewAuthService(
	cfg *config.Config,
	authRepo ports.IAuthRepo,
	oauth ports.IOAuthClient,
	mylog mylogger.Logger,
) ports.IAuthService {
	return &AuthService{
		cfg:      cfg,
		authRepo: authRepo,
		oauth:    oauth,
		mylog:    mylog,
	}
}

func (as *AuthService) Register(ctx context.Context, regReq dto.UserRegistrationRequest) (dto.UserResponse, string, error) {
	mylog := as.mylog.Action("Register")

	if regReq.Role == "" {
		regReq.Role = "tourist"
	}
	if err := validateRegistration(regReq.Name, regReq.Email, regReq.Password, regReq.Role); err != nil {
		return dto.UserResponse{}, "", err
	}

	hashedPassword, err := hashPassword(regReq.Password)
	if err != nil {
		return dto.UserResponse{}, "", fmt.Errorf("failed to hash password: %v", err)
	}
	user := models.User{
		Name:         regReq.Name,
		Email:        regReq.Email,
		PasswordHash: hashedPassword,
		Role:         regReq.Role,
	}

	id, err := as.authRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, myerrors.ErrEmailRegistered) {
			mylog.Warn("Failed to register, email already registered")
			return dto.UserResponse{}, "", err
		}
		mylog.Error("Failed to save user in db", err)
		return dto.UserResponse{}, "", fmt.Errorf("cannot save user in db: %w", err)
	}

	accessToken, err := signAccessToken(as.cfg.App.JwtSecret, id, regReq.Email, regReq.Role, regReq.Name)
	if err != nil {
		mylog.Error("error to create jwt token", err)
		return dto.UserResponse{}, "", err
	}

	mylog.Info("User registered successfully")
	return dto.UserResponse{
		UserId: id,
		Name:   regReq.Name,
		Email:  regReq.Email,
		Role:   regReq.Role,
	}, accessToken, nil
}

func (as *AuthService) Login(ctx context.Context, authReq dto.UserAuthRequest) (dto.UserResponse, string, error) {
	mylog := as.mylog.Action("Login")

	if err := validateLogin(authReq.Email, authReq.Password); err != nil {
		return dto.UserResponse{}, "", err
	}

	user, err := as.authRepo.GetByEmail(ctx, authReq.Email)
	if err != nil {
		if errors.Is(err, myerrors.ErrUnknownEmail) {
			mylog.Warn("Failed to login, unknown email")
			return dto.UserResponse{}, "", err
		}
		mylog.Error("Failed to load user from db", err)
		return dto.UserResponse{}, "", fmt.Errorf("cannot load user from db: %w", err)
	}

	if !checkPassword(user.PasswordHash, authReq.Password) {
		mylog.Debug("Failed to login, unknown password")
		return dto.UserResponse{}, "", myerrors.ErrPasswordUnknown
	}

	accessToken, err := signAccessToken(as.cfg.App.JwtSecret, user.UserId, user.Email, user.Role, user.Name)
	if err != nil {
		mylog.Error("error to create jwt token", err)
		return dto.UserResponse{}, "", err
	}

	mylog.Info("User login successfully")
	return userResponse(user), accessToken, nil
}

func (as *AuthService) Me(ctx context.Context, userID string) (dto.UserResponse, error) {
	user, err := as.authRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, myerrors.ErrUnknownUser) {
			return dto.UserResponse{}, err
		}
		as.mylog.Action("Me").Error("Failed to load user from db", err)
		return dto.UserResponse{}, fmt.Errorf("cannot load user from db: %w", err)
	}
	return userResponse(user), nil
}

func (as *AuthService) UpdateProfile(ctx context.Context, userID string, patch dto.ProfileUpdateRequest) (dto.UserResponse, error) {
	mylog := as.mylog.Action("UpdateProfile")

	user, err := as.authRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, myerrors.ErrUnknownUser) {
			return dto.UserResponse{}, err
		}
		mylog.Error("Failed to load user from db", err)
		return dto.UserResponse{}, fmt.Errorf("cannot load user from db: %w", err)
	}

	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return dto.UserResponse{}, fmt.Errorf("invalid name: %w", err)
		}
		user.Name = *patch.Name
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}

	updated, err := as.authRepo.UpdateProfile(ctx, user)
	if err != nil {
		mylog.Error("Failed to update profile", err)
		return dto.UserResponse{}, fmt.Errorf("cannot update profile: %w", err)
	}

	mylog.Info("Profile updated")
	return userResponse(updated), nil
}

// GoogleLogin exchanges the OAuth code for a Google profile, resolves the
// account (creating a tourist on first login) and issues an access token.
func (as *AuthService) GoogleLogin(ctx context.Context, code string) (dto.UserResponse, string, error) {
	mylog := as.mylog.Action("GoogleLogin")

	profile, err := as.oauth.Exchange(ctx, code)
	if err != nil {
		mylog.Error("Failed to exchange oauth code", err)
		return dto.UserResponse{}, "", fmt.Errorf("google exchange: %w", err)
	}

	user, err := as.authRepo.GetOrCreateByGoogle(ctx, models.User{
		Name:     profile.Name,
		Email:    profile.Email,
		Role:     "tourist",
		GoogleId: profile.Sub,
	})
	if err != nil {
		mylog.Error("Failed to resolve google account", err)
		return dto.UserResponse{}, "", fmt.Errorf("cannot resolve google account: %w", err)
	}

	accessToken, err := signAccessToken(as.cfg.App.JwtSecret, user.UserId, user.Email, user.Role, user.Name)
	if err != nil {
		mylog.Error("error to create jwt token", err)
		return dto.UserResponse{}, "", err
	}

	mylog.Info("Google login successful")
	return userResponse(user), accessToken, nil
}

func userResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		UserId: user.UserId,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Phone:  user.Phone,
	}
}
