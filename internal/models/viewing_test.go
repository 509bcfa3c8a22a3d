package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ViewingRequest {
	return ViewingRequest{
		PropertyID:    1,
		Name:          "Anna de Vries",
		Email:         "anna@example.com",
		Phone:         "+31 (0)6-1234 5678",
		PreferredDate: "2026-11-02",
		PreferredTime: "14:30",
	}
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	req := validRequest()
	today := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	assert.NoError(t, req.Validate(today))
}

func TestValidateAcceptsToday(t *testing.T) {
	req := validRequest()
	req.PreferredDate = "2026-10-18"
	today := time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)

	assert.NoError(t, req.Validate(today))
}

func TestValidateFieldErrors(t *testing.T) {
	today := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(r *ViewingRequest)
		field  string
		want   string
	}{
		{"empty name", func(r *ViewingRequest) { r.Name = "  " }, "name", "Name is required"},
		{"short name", func(r *ViewingRequest) { r.Name = "A" }, "name", "Name must be at least 2 characters"},
		{"bad email", func(r *ViewingRequest) { r.Email = "anna@example" }, "email", "Please enter a valid email"},
		{"missing phone", func(r *ViewingRequest) { r.Phone = "" }, "phone", "Phone is required"},
		{"letters in phone", func(r *ViewingRequest) { r.Phone = "call me maybe" }, "phone", "Please enter a valid phone number"},
		{"too many digits", func(r *ViewingRequest) { r.Phone = "1234567890123456" }, "phone", "Please enter a valid phone number (10–15 digits)"},
		{"missing date", func(r *ViewingRequest) { r.PreferredDate = "" }, "preferred_date", "Preferred date is required"},
		{"past date", func(r *ViewingRequest) { r.PreferredDate = "2026-10-17" }, "preferred_date", "Please select a future date"},
		{"bad date", func(r *ViewingRequest) { r.PreferredDate = "02/11/2026" }, "preferred_date", "Please use the YYYY-MM-DD format"},
		{"bad time", func(r *ViewingRequest) { r.PreferredTime = "2pm" }, "preferred_time", "Please use the HH:MM format"},
		{"long message", func(r *ViewingRequest) { r.Message = strings.Repeat("x", 501) }, "message", "Message must be at most 500 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate(today)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRequest))

			var fe FieldErrors
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.want, fe[tt.field])
		})
	}
}

func TestFieldErrorsMessageOrder(t *testing.T) {
	fe := FieldErrors{"phone": "bad phone", "name": "bad name"}

	assert.Equal(t, "bad name, bad phone", fe.Error())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusApproved))
	assert.True(t, ValidStatus(StatusRejected))
	assert.False(t, ValidStatus("cancelled"))
}
