// file: handler/auth_handler.go

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/DavidL050/Forex/common"
	"github.com/DavidL050/Forex/logger"
	"github.com/DavidL050/Forex/model"
	"github.com/DavidL050/Forex/service"
)

// AuthHandler holds dependencies for login, logout and token verification.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
}

func NewAuthHandler(auth *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// Login godoc
// @Summary      Log in
// @Description  Verifies the credentials, returns a token and sets it as an HTTP-only cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Username and password"
// @Success      200  {object}  model.LoginResponse
// @Failure      400  {object}  common.AppError "Body is not JSON"
// @Failure      401  {object}  model.LoginResponse "Invalid credentials"
// @Router       /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if appErr := common.DecodeJSON(r, &req); appErr != nil {
		return appErr
	}

	invalid := common.NewAppError(http.StatusUnauthorized, "Invalid credentials", nil).
		WithBody(model.LoginResponse{Status: "error", Message: "Invalid credentials"})

	if err := common.Validate(req); err != nil {
		return invalid
	}

	token, _, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return invalid
		}
		return internalError(err)
	}

	ttl := h.auth.Tokens().TTL()
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	common.WriteJSON(w, http.StatusOK, model.LoginResponse{
		Status:  "success",
		Message: "Login successful",
		Token:   token,
	})
	return nil
}

// Logout godoc
// @Summary      Log out
// @Description  Deletes the session row for the presented token and clears the cookie. The token itself stays valid until it expires.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.MessageResponse
// @Failure      401  {object}  model.MessageResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, ok := UserFromContext(r.Context())
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "User not found", nil)
	}

	if _, err := h.auth.Logout(r.Context(), user.ID, TokenFromContext(r.Context())); err != nil {
		return internalError(err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	common.WriteJSON(w, http.StatusOK, model.MessageResponse{Message: "Logout successful"})
	return nil
}

// VerifyToken godoc
// @Summary      Verify the current token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.VerifyTokenResponse
// @Failure      401  {object}  model.MessageResponse
// @Router       /api/verify-token [get]
// @Router       /api/verify-token [post]
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, ok := UserFromContext(r.Context())
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "User not found", nil)
	}

	logger.Log.WithField("user_id", user.ID).Debug("Token verified")
	common.WriteJSON(w, http.StatusOK, model.VerifyTokenResponse{IsValid: true, UserID: user.ID})
	return nil
}
