package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/angristan/homeshowcase/internal/models"
)

const propertyColumns = `id, address, city, state, zip_code, price, bedrooms, bathrooms, sqft,
	year_built, lot_size, description, features, images`

// GetDefaultProperty returns the showcased property, which is the first one
// stored
func (s *Store) GetDefaultProperty(ctx context.Context) (*models.Property, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY id LIMIT 1`)
	return scanProperty(row)
}

// GetProperty returns a property by ID, without rooms
func (s *Store) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id)
	return scanProperty(row)
}

// GetDefaultPropertyWithRooms returns the showcased property with its rooms
// in display order
func (s *Store) GetDefaultPropertyWithRooms(ctx context.Context) (*models.Property, error) {
	p, err := s.GetDefaultProperty(ctx)
	if err != nil {
		return nil, err
	}
	p.Rooms, err = s.ListRooms(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProperty stores p and its rooms in one transaction, filling in the
// generated IDs
func (s *Store) CreateProperty(ctx context.Context, p *models.Property) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("while starting transaction: %w", err)
	}
	defer tx.Rollback()

	features, err := encodeList(p.Features)
	if err != nil {
		return err
	}
	images, err := encodeList(p.Images)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
INSERT INTO properties (address, city, state, zip_code, price, bedrooms, bathrooms, sqft,
	year_built, lot_size, description, features, images)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Address, p.City, p.State, p.ZipCode, p.Price, p.Bedrooms, p.Bathrooms, p.Sqft,
		p.YearBuilt, p.LotSize, p.Description, features, images)
	if err != nil {
		return fmt.Errorf("while inserting property: %w", err)
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	for _, room := range p.Rooms {
		room.PropertyID = p.ID
		if err := insertRoom(ctx, tx, room); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// CountProperties returns how many properties are stored
func (s *Store) CountProperties(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&n)
	return n, err
}

func scanProperty(row *sql.Row) (*models.Property, error) {
	var (
		p        models.Property
		lotSize  sql.NullFloat64
		features string
		images   string
	)
	err := row.Scan(&p.ID, &p.Address, &p.City, &p.State, &p.ZipCode, &p.Price, &p.Bedrooms,
		&p.Bathrooms, &p.Sqft, &p.YearBuilt, &lotSize, &p.Description, &features, &images)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("while reading property: %w", err)
	}

	if lotSize.Valid {
		p.LotSize = &lotSize.Float64
	}
	if err := decodeList(features, &p.Features); err != nil {
		return nil, err
	}
	if err := decodeList(images, &p.Images); err != nil {
		return nil, err
	}
	return &p, nil
}

// encodeList stores a string list as a JSON array column
func encodeList[T ~[]E, E any](list T) (string, error) {
	if len(list) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("while encoding list column: %w", err)
	}
	return string(b), nil
}

func decodeList[T any](s string, out *T) error {
	if s == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(s), out); err != nil {
		return fmt.Errorf("while decoding list column: %w", err)
	}
	return nil
}
