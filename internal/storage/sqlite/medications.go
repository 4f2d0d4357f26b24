package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"medtrack/internal/models"
)

// CreateMedication inserts a new medication record into the database.
// A nil TimeOfDay is stored as NULL.
func (s *SQLiteStore) CreateMedication(ctx context.Context, med *models.Medication) error {
	if med.ID == "" {
		med.ID = uuid.New().String()
	}
	if med.CreatedAt == 0 {
		med.CreatedAt = time.Now().Unix()
	}

	var timeOfDay sql.NullString
	if med.TimeOfDay != nil {
		timeOfDay = sql.NullString{String: med.TimeOfDay.String(), Valid: true}
	}

	query := `
		INSERT INTO medications (id, name, description, price, inventory_id, dosage, time_of_day, frequency, taken, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		med.ID,
		med.Name,
		med.Description,
		med.Price,
		med.InventoryID,
		med.Dosage,
		timeOfDay,
		med.Frequency,
		med.Taken,
		med.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create medication: %w", err)
	}

	return nil
}

// ListMedications returns every medication record in insertion order.
func (s *SQLiteStore) ListMedications(ctx context.Context) ([]models.Medication, error) {
	query := `
		SELECT id, name, description, price, inventory_id, dosage, time_of_day, frequency, taken, created_at
		FROM medications
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	defer rows.Close()

	var meds []models.Medication
	for rows.Next() {
		var med models.Medication
		var timeOfDay sql.NullString
		if err := rows.Scan(
			&med.ID,
			&med.Name,
			&med.Description,
			&med.Price,
			&med.InventoryID,
			&med.Dosage,
			&timeOfDay,
			&med.Frequency,
			&med.Taken,
			&med.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan medication: %w", err)
		}
		if timeOfDay.Valid {
			parsed, err := models.ParseTimeOfDay(timeOfDay.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse stored time of day: %w", err)
			}
			med.TimeOfDay = &parsed
		}
		meds = append(meds, med)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating medications: %w", err)
	}

	return meds, nil
}
