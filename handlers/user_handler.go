package handlers

import (
	"net/http"

	"github.com/rajat290/fitpro-connect/models"
	"github.com/rajat290/fitpro-connect/repository"
)

type UserHandler struct {
	Repo repository.UserRepository
}

// Me returns the caller's own record, looked up by the subject id the
// auth middleware put on the context.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Authentication required",
		})
		return
	}

	user, err := h.Repo.GetUserByID(r.Context(), claims.Subject)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if user == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "User not found",
		})
		return
	}

	// User serializes without the password hash (json:"-")
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "OK",
		Data:    user,
	})
}

// ListMembers returns every member row. Reached only through the
// admin/trainer-gated route.
func (h *UserHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{
			Success: false,
			Message: "Invalid request method",
		})
		return
	}

	members, err := h.Repo.ListMembers(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if members == nil {
		members = []*models.User{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "OK",
		Data:    members,
	})
}
