package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/angristan/homeshowcase/internal/models"
)

// MaxPageSize caps ListViewingRequests
const MaxPageSize = 100

const viewingColumns = `id, property_id, name, email, phone, preferred_date, preferred_time, message, status, created_at`

// CreateViewingRequest stores a new pending request. The referenced property
// must exist.
func (s *Store) CreateViewingRequest(ctx context.Context, req *models.ViewingRequest) (*models.ViewingRequest, error) {
	if _, err := s.GetProperty(ctx, req.PropertyID); err != nil {
		return nil, err
	}

	stored := *req
	stored.Status = models.StatusPending
	stored.CreatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
INSERT INTO viewing_requests (property_id, name, email, phone, preferred_date, preferred_time, message, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.PropertyID, stored.Name, stored.Email, stored.Phone, stored.PreferredDate,
		nullString(stored.PreferredTime), nullString(stored.Message), stored.Status, stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("while inserting viewing request: %w", err)
	}
	if stored.ID, err = res.LastInsertId(); err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetViewingRequest returns a request by ID
func (s *Store) GetViewingRequest(ctx context.Context, id int64) (*models.ViewingRequest, error) {
	req, err := scanViewingRequest(s.db.QueryRowContext(ctx,
		`SELECT `+viewingColumns+` FROM viewing_requests WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return req, err
}

// ListViewingRequests returns a page of requests, newest first, together
// with the total number matching. A zero propertyID lists every property.
func (s *Store) ListViewingRequests(ctx context.Context, propertyID int64, skip, limit int) ([]*models.ViewingRequest, int, error) {
	limit = min(max(limit, 1), MaxPageSize)
	skip = max(skip, 0)

	where := ""
	var args []any
	if propertyID != 0 {
		where = " WHERE property_id = ?"
		args = append(args, propertyID)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM viewing_requests`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("while counting viewing requests: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+viewingColumns+` FROM viewing_requests`+where+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		append(args, limit, skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("while listing viewing requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.ViewingRequest{}
	for rows.Next() {
		req, err := scanViewingRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	return requests, total, rows.Err()
}

// UpdateViewingStatus sets the status of a request. Only pending, approved
// and rejected are accepted.
func (s *Store) UpdateViewingStatus(ctx context.Context, id int64, status string) (*models.ViewingRequest, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	res, err := s.db.ExecContext(ctx, `UPDATE viewing_requests SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return nil, fmt.Errorf("while updating viewing request %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return s.GetViewingRequest(ctx, id)
}

func scanViewingRequest(row scanner) (*models.ViewingRequest, error) {
	var (
		req           models.ViewingRequest
		preferredTime sql.NullString
		message       sql.NullString
	)
	err := row.Scan(&req.ID, &req.PropertyID, &req.Name, &req.Email, &req.Phone, &req.PreferredDate,
		&preferredTime, &message, &req.Status, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("while reading viewing request: %w", err)
	}
	req.PreferredTime = preferredTime.String
	req.Message = message.String
	return &req, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
