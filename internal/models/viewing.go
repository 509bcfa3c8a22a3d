package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Viewing request statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// DateLayout and TimeLayout are the wire formats for preferred date/time
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

const maxMessageLen = 500

var (
	ErrInvalidRequest = errors.New("invalid viewing request")
	ErrInvalidStatus  = errors.New("invalid status")
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneLoose      = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
	phoneStrict     = regexp.MustCompile(`^\+?\d{10,15}$`)
	phoneSeparators = regexp.MustCompile(`[\s\-().]`)
)

// ViewingRequest is a lead submitted from the listing page
type ViewingRequest struct {
	ID            int64     `json:"id,omitempty"`
	PropertyID    int64     `json:"property_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time,omitempty"`
	Message       string    `json:"message,omitempty"`
	Status        string    `json:"status,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// FieldErrors maps a form field to its validation message
type FieldErrors map[string]string

// requestFields lists the form fields in display order
var requestFields = []string{"name", "email", "phone", "preferred_date", "preferred_time", "message"}

func (e FieldErrors) Error() string {
	fields := e.Fields()
	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = e[field]
	}
	return strings.Join(parts, ", ")
}

// Fields returns the fields that have an error, in form order
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, field := range requestFields {
		if _, ok := e[field]; ok {
			fields = append(fields, field)
		}
	}
	return fields
}

// Is lets errors.Is match FieldErrors against ErrInvalidRequest
func (e FieldErrors) Is(target error) bool {
	return target == ErrInvalidRequest
}

// Validate checks the request the way the listing form does. today is the
// current date; preferred dates before it are rejected.
func (r *ViewingRequest) Validate(today time.Time) error {
	errs := FieldErrors{}

	name := strings.TrimSpace(r.Name)
	switch {
	case name == "":
		errs["name"] = "Name is required"
	case len([]rune(name)) < 2:
		errs["name"] = "Name must be at least 2 characters"
	case len([]rune(name)) > 100:
		errs["name"] = "Name must be at most 100 characters"
	}

	email := strings.TrimSpace(r.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Please enter a valid email"
	}

	phone := strings.TrimSpace(r.Phone)
	switch {
	case phone == "":
		errs["phone"] = "Phone is required"
	case !phoneLoose.MatchString(phone):
		errs["phone"] = "Please enter a valid phone number"
	case !phoneStrict.MatchString(phoneSeparators.ReplaceAllString(phone, "")):
		errs["phone"] = "Please enter a valid phone number (10–15 digits)"
	}

	if r.PreferredDate == "" {
		errs["preferred_date"] = "Preferred date is required"
	} else if d, err := time.ParseInLocation(DateLayout, r.PreferredDate, today.Location()); err != nil {
		errs["preferred_date"] = "Please use the YYYY-MM-DD format"
	} else {
		y, m, day := today.Date()
		if d.Before(time.Date(y, m, day, 0, 0, 0, 0, today.Location())) {
			errs["preferred_date"] = "Please select a future date"
		}
	}

	if r.PreferredTime != "" {
		if _, err := time.Parse(TimeLayout, r.PreferredTime); err != nil {
			errs["preferred_time"] = "Please use the HH:MM format"
		}
	}

	if len([]rune(r.Message)) > maxMessageLen {
		errs["message"] = fmt.Sprintf("Message must be at most %d characters", maxMessageLen)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidStatus reports whether s is a known viewing request status
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
