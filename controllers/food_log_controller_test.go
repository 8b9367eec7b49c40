package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/YDahdah/NutriLens/services"
)

func TestUpdateLogError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"invalid log id", services.ErrInvalidLogID, http.StatusBadRequest, "Invalid log ID"},
		{"log not found", services.ErrLogNotFound, http.StatusNotFound, "Food log not found"},
		{"non-positive quantity", services.ErrInvalidQuantity, http.StatusBadRequest, "Quantity must be a positive number"},
		{"invalid food id", services.ErrInvalidFoodID, http.StatusBadRequest, "Invalid food id"},
		{"food deleted after logging", services.ErrFoodNotFound, http.StatusNotFound, "Food not found"},
		{"unexpected error", errors.New("connection reset"), http.StatusInternalServerError, "Update failed: connection reset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := updateLogError(tt.err)
			if status != tt.wantStatus || message != tt.wantMessage {
				t.Errorf("updateLogError(%v) = (%d, %q), want (%d, %q)", tt.err, status, message, tt.wantStatus, tt.wantMessage)
			}
		})
	}
}
