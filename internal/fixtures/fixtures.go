// Package fixtures creates the database schema and, outside production,
// a small demo data set so a fresh checkout is usable immediately.
package fixtures

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/database"
)

//go:embed schema.sql
var schemaSQL string

const demoPassword = "demo123"

// Migrate applies the schema. Statements are idempotent.
func Migrate(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Seed upserts the demo users and inserts the demo projects and reports
// when they are missing. Safe to run on every startup.
func Seed(ctx context.Context, db *database.DB) error {
	if _, err := upsertUser(ctx, db, "admin", "Admin", "admin"); err != nil {
		return err
	}

	workerID, err := upsertUser(ctx, db, "max", "Max", "worker")
	if err != nil {
		return err
	}

	projects := []struct {
		id, name, address, customer, status, description, imageURL string
	}{
		{"proj-1", "Neubau Musterstraße 15", "Musterstraße 15, 12345 Berlin", "Firma Mustermann GmbH", "active",
			"Rohbau und Innenausbau", "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800"},
		{"proj-2", "Dachsanierung Altstadt", "Altstadtgasse 3, 5020 Salzburg", "Bau & Dach GmbH", "paused",
			"Dachstuhl und Ziegel werden erneuert", "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800"},
		{"proj-3", "Tiefgarage Citypark", "Industriestraße 77, 4020 Linz", "Citypark Immobilien", "active",
			"Betonarbeiten und Abdichtung", "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=800"},
	}
	for _, p := range projects {
		tag, err := db.Exec(ctx, `
			INSERT INTO projects (id, name, address, customer_name, status, description, image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, p.id, p.name, p.address, p.customer, p.status, p.description, p.imageURL)
		if err != nil {
			return fmt.Errorf("failed to seed project %s: %w", p.id, err)
		}
		if tag.RowsAffected() == 0 {
			continue
		}
		if _, err := db.Exec(ctx, `
			INSERT INTO project_assignments (project_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, p.id, workerID); err != nil {
			return fmt.Errorf("failed to seed assignment for %s: %w", p.id, err)
		}
	}

	reports := []struct {
		id, projectID, text string
		quickActions        []string
		weather             string
		workersPresent      int
	}{
		{"rep-1", "proj-1", "Fundament fertig betoniert. Aushärtung läuft.",
			[]string{"Arbeiten abgeschlossen"}, "Sonnig, 8°C", 4},
		{"rep-2", "proj-1", "Kelleraußenwände Abdichtung angebracht. Drainage verlegt.",
			[]string{"Material geliefert"}, "Bewölkt, 6°C", 3},
		{"rep-3", "proj-2", "Alte Ziegel entfernt. Dachstuhl freigelegt. Einige Balken müssen getauscht werden.",
			[]string{"Material fehlt", "Inspektion"}, "Bewölkt, 4°C", 3},
		{"rep-4", "proj-3", "Bodenplatte gegossen. Problem mit Grundwasser - Pumpen laufen.",
			[]string{"Sicherheitsproblem"}, "Regen, 5°C", 5},
	}
	for _, r := range reports {
		if _, err := db.Exec(ctx, `
			INSERT INTO reports (id, project_id, user_id, text, quick_actions, weather, workers_present)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, r.id, r.projectID, workerID, r.text, r.quickActions, r.weather, r.workersPresent); err != nil {
			return fmt.Errorf("failed to seed report %s: %w", r.id, err)
		}
	}

	return nil
}

func upsertUser(ctx context.Context, db *database.DB, username, name, role string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash demo password: %w", err)
	}

	var id string
	err = db.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	switch {
	case err == nil:
		_, err = db.Exec(ctx, `UPDATE users SET name = $1, role = $2, password_hash = $3 WHERE id = $4`,
			name, role, string(hash), id)
		if err != nil {
			return "", fmt.Errorf("failed to update demo user %s: %w", username, err)
		}
		return id, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return "", fmt.Errorf("failed to look up demo user %s: %w", username, err)
	}

	id = uuid.NewString()
	_, err = db.Exec(ctx, `
		INSERT INTO users (id, username, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
	`, id, username, name, string(hash), role)
	if err != nil {
		return "", fmt.Errorf("failed to seed demo user %s: %w", username, err)
	}
	return id, nil
}
