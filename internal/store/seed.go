package store

import (
	"context"
	"log/slog"

	"github.com/angristan/homeshowcase/internal/sample"
)

// Seed stores the sample listing when the database holds no property yet.
// It reports whether anything was written.
func (s *Store) Seed(ctx context.Context) (bool, error) {
	n, err := s.CountProperties(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		slog.Debug("database already seeded", "properties", n)
		return false, nil
	}

	p := sample.Property()
	if err := s.CreateProperty(ctx, p); err != nil {
		return false, err
	}
	slog.Info("seeded sample listing", "property_id", p.ID, "rooms", len(p.Rooms))
	return true, nil
}
