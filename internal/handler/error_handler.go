package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "BAD_REQUEST":
		return http.StatusBadRequest
	case "NOT_FOUND", "NO_SNAPSHOT":
		return http.StatusNotFound
	case "DATA_MISMATCH":
		return http.StatusConflict
	case "ROSTER_INVALID":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
