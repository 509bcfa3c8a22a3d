package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angristan/homeshowcase/internal/models"
)

const roomColumns = `id, property_id, name, room_type, description, dimensions, features, images, display_order`

// ListRooms returns the rooms of a property ordered by display order
func (s *Store) ListRooms(ctx context.Context, propertyID int64) ([]*models.Room, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE property_id = ? ORDER BY display_order, id`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("while listing rooms: %w", err)
	}
	defer rows.Close()

	rooms := []*models.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// GetRoom returns a room by ID
func (s *Store) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	room, err := scanRoom(s.db.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return room, err
}

func insertRoom(ctx context.Context, tx *sql.Tx, room *models.Room) error {
	features, err := encodeList(room.Features)
	if err != nil {
		return err
	}
	images, err := encodeList(room.Images)
	if err != nil {
		return err
	}

	var dimensions sql.NullString
	if room.Dimensions != "" {
		dimensions = sql.NullString{String: room.Dimensions, Valid: true}
	}

	res, err := tx.ExecContext(ctx, `
INSERT INTO rooms (property_id, name, room_type, description, dimensions, features, images, display_order)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		room.PropertyID, room.Name, string(room.Type), room.Description, dimensions, features, images, room.DisplayOrder)
	if err != nil {
		return fmt.Errorf("while inserting room %q: %w", room.Name, err)
	}
	room.ID, err = res.LastInsertId()
	return err
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanRoom(row scanner) (*models.Room, error) {
	var (
		room       models.Room
		roomType   string
		dimensions sql.NullString
		features   string
		images     string
	)
	err := row.Scan(&room.ID, &room.PropertyID, &room.Name, &roomType, &room.Description,
		&dimensions, &features, &images, &room.DisplayOrder)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("while reading room: %w", err)
	}

	room.Type = models.RoomType(roomType)
	room.Dimensions = dimensions.String
	if err := decodeList(features, &room.Features); err != nil {
		return nil, err
	}
	if err := decodeList(images, &room.Images); err != nil {
		return nil, err
	}
	return &room, nil
}
