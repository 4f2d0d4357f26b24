// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"medtrack/internal/models"
)

// Store defines the interface for MedTrack's persistence operations.
// This abstraction allows swapping storage backends (SQLite, MySQL, etc.)
// without changing the handlers or the auth layer.
type Store interface {
	// CreateAdmin persists a new admin account.
	// The ID and CreatedAt fields are populated by the store when unset.
	// Usernames are unique; inserting a duplicate returns an error.
	CreateAdmin(ctx context.Context, admin *models.Admin) error

	// GetAdminByUsername retrieves an account by its login name.
	// Returns (nil, nil) when no account exists with that username.
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)

	// CreateBatch persists a new inventory batch.
	// The ID and CreatedAt fields are populated by the store when unset.
	CreateBatch(ctx context.Context, batch *models.InventoryBatch) error

	// ListBatches returns all inventory batches in insertion order.
	ListBatches(ctx context.Context) ([]models.InventoryBatch, error)

	// CreateMedication persists a new medication record.
	// The ID and CreatedAt fields are populated by the store when unset.
	CreateMedication(ctx context.Context, med *models.Medication) error

	// ListMedications returns all medication records in insertion order.
	ListMedications(ctx context.Context) ([]models.Medication, error)

	// CreateSession persists a new login session.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session by ID.
	// Returns (nil, nil) when no session exists with that ID.
	GetSession(ctx context.Context, id string) (*models.Session, error)

	// DeleteSession removes a session, revoking the login it represents.
	// Deleting a session that does not exist is not an error.
	DeleteSession(ctx context.Context, id string) error

	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
