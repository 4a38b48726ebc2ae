package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rajat290/fitpro-connect/auth"
	"github.com/rajat290/fitpro-connect/models"
	"github.com/rajat290/fitpro-connect/repository"
)

type AuthHandler struct {
	Service *auth.Service
}

// Signup handler
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{
			Success: false,
			Message: "Invalid request method",
		})
		return
	}

	var input auth.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	user, err := h.Service.Register(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Success: false,
				Message: err.Error(),
			})
		case errors.Is(err, repository.ErrDuplicateEmail):
			writeJSON(w, http.StatusConflict, ApiResponse{
				Success: false,
				Message: "Email already registered",
			})
		default:
			writeStoreError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "User signed up successfully",
		Data:    models.NewPublicUser(user),
	})
}

// Login handler
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{
			Success: false,
			Message: "Invalid request method",
		})
		return
	}

	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	result, err := h.Service.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{
				Success: false,
				Message: "Invalid credentials",
			})
			return
		}
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Login successful",
		Data:    result,
	})
}
