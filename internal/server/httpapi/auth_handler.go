package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskboard/internal/common"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	users UserService
}

func NewAuthHandler(users UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) error {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if fields := req.Validate(); len(fields) > 0 {
		return errValidation(fields)
	}

	user, token, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return errBadRequest("User with this email already exists")
		}
		return err
	}

	respondData(w, http.StatusCreated, newAuthResponse(user, token))
	return nil
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if fields := req.Validate(); len(fields) > 0 {
		return errValidation(fields)
	}

	user, token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return errUnauthorized("Invalid email or password")
		}
		return err
	}

	respondData(w, http.StatusOK, newAuthResponse(user, token))
	return nil
}

// Logout acknowledges the request. Tokens are stateless, so the client
// simply discards its copy; nothing is revoked server-side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) error {
	respondMessage(w, http.StatusOK, "Logged out successfully")
	return nil
}
