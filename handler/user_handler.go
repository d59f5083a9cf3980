package handler

import (
	"errors"
	"net/http"

	"github.com/DavidL050/Forex/common"
	"github.com/DavidL050/Forex/logger"
	"github.com/DavidL050/Forex/model"
	"github.com/DavidL050/Forex/service"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GetPreferences godoc
// @Summary      Get preferences
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.Preferences
// @Failure      401  {object}  model.MessageResponse
// @Router       /api/user/preferences [get]
func (h *UserHandler) GetPreferences(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, ok := UserFromContext(r.Context())
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "User not found", nil)
	}

	common.WriteJSON(w, http.StatusOK, user.Preferences)
	return nil
}

// UpdatePreferences godoc
// @Summary      Replace preferences
// @Description  Replaces the whole preference document. preferred_currencies is required.
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        preferences body model.Preferences true "New preference document"
// @Success      200  {object}  model.MessageResponse
// @Failure      400  {object}  model.MessageResponse
// @Failure      401  {object}  model.MessageResponse
// @Router       /api/user/preferences [put]
func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, ok := UserFromContext(r.Context())
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "User not found", nil)
	}

	var prefs model.Preferences
	if appErr := common.DecodeJSON(r, &prefs); appErr != nil {
		return appErr
	}

	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"currencies": prefs.PreferredCurrencies,
	})
	log.Info("Update preferences request received")

	if err := h.users.UpdatePreferences(r.Context(), user.ID, prefs); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPreferences):
			return common.NewAppError(http.StatusBadRequest, "Missing required field: preferred_currencies", err)
		case errors.Is(err, service.ErrUserNotFound):
			return common.NewAppError(http.StatusUnauthorized, "User not found", nil)
		default:
			return internalError(err)
		}
	}

	common.WriteJSON(w, http.StatusOK, model.MessageResponse{Message: "Preferences updated successfully"})
	return nil
}
