package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/attendance-backend-go/internal/domain/attendance"
	"github.com/staffledger/attendance-backend-go/internal/domain/auth"
	"github.com/staffledger/attendance-backend-go/internal/domain/employee"
	"github.com/staffledger/attendance-backend-go/internal/pkg/validator"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusConflict},
		{"invalid timestamp format", attendance.ErrInvalidFormat, http.StatusBadRequest},
		{"inverted work range", attendance.ErrInvalidRange, http.StatusBadRequest},
		{"missing status input", attendance.ErrMissingInput, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
		})
	}
}

func TestHandleErrorValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, validator.ValidationErrors{
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "date must be in YYYY-MM-DD format", resp.Error.Details["date"])
}

func TestPageMeta(t *testing.T) {
	meta := PageMeta(2, 20, 57)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(57), meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, "21-40 of 57", meta.Showing)
}

func TestPageMetaLastPartialPage(t *testing.T) {
	meta := PageMeta(3, 20, 57)

	assert.Equal(t, "41-57 of 57", meta.Showing)
}

func TestPageMetaEmpty(t *testing.T) {
	meta := PageMeta(1, 20, 0)

	assert.Equal(t, int64(0), meta.TotalCount)
	assert.Equal(t, 0, meta.TotalPages)
	assert.Equal(t, "0 of 0", meta.Showing)
}
