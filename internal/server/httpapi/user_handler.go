package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/services"
)

// UserHandler serves the authenticated caller's profile.
type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) error {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		return errUnauthorized("Not authorized, no token")
	}

	user, err := h.users.GetByID(r.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return errUnauthorized("User not found")
		}
		return err
	}

	respondData(w, http.StatusOK, newUserResponse(user))
	return nil
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) error {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		return errUnauthorized("Not authorized, no token")
	}

	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if fields := req.Validate(); len(fields) > 0 {
		return errValidation(fields)
	}

	user, err := h.users.UpdateProfile(r.Context(), identity.ID, services.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmailTaken):
			return errBadRequest("Email already in use")
		case errors.Is(err, common.ErrNotFound):
			return errUnauthorized("User not found")
		}
		return err
	}

	respondData(w, http.StatusOK, newUserResponse(user))
	return nil
}
