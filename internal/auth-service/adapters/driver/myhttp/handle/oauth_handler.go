package handle

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/ports"
	"github.com/maharjanPranish/NepXplore/internal/mylogger"
)

type OAuthHandler struct {
	authService ports.IAuthService
	oauth       ports.IOAuthClient
	clientURL   string
	mylog       mylogger.Logger
}

func NewOAuthHandler(authService ports.IAuthService, oauth ports.IOAuthClient, clientURL string, mylog mylogger.Logger) *OAuthHandler {
	return &OAuthHandler{
		authService: authService,
		oauth:       oauth,
		clientURL:   clientURL,
		mylog:       mylog,
	}
}

const stateCookie = "oauth_state"

// GoogleRedirect sends the browser to the Google consent page. The random
// state is stashed in a short-lived cookie and checked on callback.
func (oh *OAuthHandler) GoogleRedirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     stateCookie,
			Value:    state,
			Path:     "/",
			MaxAge:   300,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, oh.oauth.AuthURL(state), http.StatusTemporaryRedirect)
	}
}

func (oh *OAuthHandler) GoogleCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := oh.mylog.Action("GoogleCallback")

		stateParam := r.URL.Query().Get("state")
		cookie, err := r.Cookie(stateCookie)
		if err != nil || cookie.Value == "" || cookie.Value != stateParam {
			mylog.Warn("state mismatch on oauth callback")
			jsonError(w, http.StatusBadRequest, errors.New("invalid oauth state"))
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			jsonError(w, http.StatusBadRequest, errors.New("missing code"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		_, accessToken, err := oh.authService.GoogleLogin(ctx, code)
		if err != nil {
			mylog.Error("google login failed", err)
			jsonError(w, http.StatusInternalServerError, errors.New("google login failed"))
			return
		}

		setTokenCookie(w, accessToken)
		http.Redirect(w, r, oh.clientURL, http.StatusTemporaryRedirect)
		mylog.Info("Google login completed")
	}
}
