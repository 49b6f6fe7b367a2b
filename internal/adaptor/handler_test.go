package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestHandleServiceErrorBuckets(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", fmt.Errorf("product 42 not found"), http.StatusNotFound},
		{"duplicate email", fmt.Errorf("email already registered"), http.StatusConflict},
		{"already verified", fmt.Errorf("email already verified"), http.StatusConflict},
		{"bad credentials", fmt.Errorf("password does not match"), http.StatusUnauthorized},
		{"validation", fmt.Errorf("validation failed: Email: Invalid email format"), http.StatusBadRequest},
		{"expired token", fmt.Errorf("reset token expired"), http.StatusBadRequest},
		{"storage failure", fmt.Errorf("failed to update category"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tt.err, "test operation")

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestHandleServiceErrorHidesInternalDetail(t *testing.T) {
	err := errors.New("update category 5: ERROR: deadlock detected (SQLSTATE 40P01)")

	rec := httptest.NewRecorder()
	handleServiceError(rec, zap.NewNop(), err, "update category")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	body := rec.Body.String()
	if strings.Contains(body, "SQLSTATE") || strings.Contains(body, "deadlock") {
		t.Errorf("storage detail leaked to client: %s", body)
	}
	if !strings.Contains(body, "Internal server error") {
		t.Errorf("body = %s, want generic message", body)
	}
}
