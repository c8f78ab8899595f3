package handle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/myerrors"
	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/ports"
	"github.com/maharjanPranish/NepXplore/internal/mylogger"
)

type AuthHandler struct {
	authService ports.IAuthService
	mylog       mylogger.Logger
}

func NewAuthHandler(authService ports.IAuthService, mylog mylogger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		mylog:       mylog,
	}
}

func (ah *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var regReq dto.UserRegistrationRequest

		mylog := ah.mylog.Action("Register")

		if err := json.NewDecoder(r.Body).Decode(&regReq); err != nil {
			mylog.Error("Failed to parse registration", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		user, accessToken, err := ah.authService.Register(ctx, regReq)
		if err != nil {
			if errors.Is(err, myerrors.ErrEmailRegistered) || errors.Is(err, myerrors.ErrUnknownRole) {
				jsonError(w, http.StatusBadRequest, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		setTokenCookie(w, accessToken)
		jsonResponse(w, http.StatusCreated, map[string]interface{}{
			"msg":   fmt.Sprintf("%s registered successfully!", user.Name),
			"user":  user,
			"token": accessToken,
		})
		mylog.Info("Successfully registered!")
	}
}

func (ah *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var authReq dto.UserAuthRequest

		mylog := ah.mylog.Action("Login")

		if err := json.NewDecoder(r.Body).Decode(&authReq); err != nil {
			mylog.Error("Failed to parse login", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		user, accessToken, err := ah.authService.Login(ctx, authReq)
		if err != nil {
			if errors.Is(err, myerrors.ErrUnknownEmail) || errors.Is(err, myerrors.ErrPasswordUnknown) {
				jsonError(w, http.StatusUnauthorized, errors.New("invalid credentials"))
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		setTokenCookie(w, accessToken)
		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"msg":   "Successfully login!",
			"user":  user,
			"token": accessToken,
		})
		mylog.Info("Successfully login!")
	}
}

func (ah *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearTokenCookie(w)
		jsonResponse(w, http.StatusOK, map[string]string{
			"msg": "Successfully logged out!",
		})
	}
}

func (ah *AuthHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		user, err := ah.authService.Me(ctx, r.Header.Get("X-UserId"))
		if err != nil {
			if errors.Is(err, myerrors.ErrUnknownUser) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusOK, user)
	}
}

func (ah *AuthHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch dto.ProfileUpdateRequest

		mylog := ah.mylog.Action("UpdateProfile")

		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			mylog.Error("Failed to parse profile update", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		user, err := ah.authService.UpdateProfile(ctx, r.Header.Get("X-UserId"), patch)
		if err != nil {
			if errors.Is(err, myerrors.ErrUnknownUser) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			if errors.Is(err, myerrors.ErrFieldIsEmpty) {
				jsonError(w, http.StatusBadRequest, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusOK, user)
		mylog.Info("Profile updated")
	}
}
