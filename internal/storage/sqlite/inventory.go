package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"medtrack/internal/models"
)

// CreateBatch inserts a new inventory batch into the database.
func (s *SQLiteStore) CreateBatch(ctx context.Context, batch *models.InventoryBatch) error {
	if batch.ID == "" {
		batch.ID = uuid.New().String()
	}
	if batch.CreatedAt == 0 {
		batch.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO inventory_batches (id, quantity, brand, category, received_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		batch.ID,
		batch.Quantity,
		batch.Brand,
		batch.Category,
		batch.ReceivedDate,
		batch.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create inventory batch: %w", err)
	}

	return nil
}

// ListBatches returns every inventory batch in insertion order.
func (s *SQLiteStore) ListBatches(ctx context.Context) ([]models.InventoryBatch, error) {
	query := `
		SELECT id, quantity, brand, category, received_date, created_at
		FROM inventory_batches
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory batches: %w", err)
	}
	defer rows.Close()

	var batches []models.InventoryBatch
	for rows.Next() {
		var batch models.InventoryBatch
		if err := rows.Scan(
			&batch.ID,
			&batch.Quantity,
			&batch.Brand,
			&batch.Category,
			&batch.ReceivedDate,
			&batch.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inventory batch: %w", err)
		}
		batches = append(batches, batch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory batches: %w", err)
	}

	return batches, nil
}
