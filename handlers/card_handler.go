package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rajat290/fitpro-connect/repository"
	"github.com/rajat290/fitpro-connect/utils"
)

type CardHandler struct {
	Repo repository.UserRepository
}

// MemberCard generates the caller's membership card as a PDF. When R2
// is configured the card is uploaded and its public URL returned,
// otherwise the PDF bytes are served directly.
func (h *CardHandler) MemberCard(w http.ResponseWriter, r *http.Request) {
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

	pdfBytes, err := utils.GenerateMemberCardPDF(user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to generate membership card",
		})
		return
	}

	filename := fmt.Sprintf("card_%s_%d.pdf", user.ID, time.Now().Unix())

	// Upload to R2 when configured, local serve otherwise
	if os.Getenv("R2_BUCKET") != "" {
		fileURL, err := utils.UploadToR2(pdfBytes, filename)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "Failed to store membership card",
			})
			return
		}
		writeJSON(w, http.StatusOK, ApiResponse{
			Success: true,
			Message: "Membership card generated",
			Data:    map[string]string{"file": filename, "url": fileURL},
		})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename="+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
