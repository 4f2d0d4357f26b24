package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"medtrack/internal/models"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "medtrack-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("CreateAdmin generates ID and enforces unique usernames", func(t *testing.T) {
		admin := &models.Admin{
			Name:         "Casey",
			Email:        "casey@example.com",
			Username:     "caseyadmin",
			PasswordHash: "$2a$10$fakehashfakehashfakehash",
		}

		if err := store.CreateAdmin(ctx, admin); err != nil {
			t.Fatalf("CreateAdmin failed: %v", err)
		}
		if admin.ID == "" {
			t.Error("Expected admin ID to be generated")
		}
		if admin.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}

		duplicate := &models.Admin{
			Name:         "Other",
			Email:        "other@example.com",
			Username:     "caseyadmin",
			PasswordHash: "$2a$10$otherhashotherhashother",
		}
		if err := store.CreateAdmin(ctx, duplicate); err == nil {
			t.Error("Expected duplicate username insert to fail")
		}
	})

	t.Run("GetAdminByUsername round-trips and misses cleanly", func(t *testing.T) {
		admin, err := store.GetAdminByUsername(ctx, "caseyadmin")
		if err != nil {
			t.Fatalf("GetAdminByUsername failed: %v", err)
		}
		if admin == nil {
			t.Fatal("Expected admin to be found")
		}
		if admin.Email != "casey@example.com" {
			t.Errorf("Email = %q, want %q", admin.Email, "casey@example.com")
		}

		missing, err := store.GetAdminByUsername(ctx, "nobody")
		if err != nil {
			t.Fatalf("GetAdminByUsername failed: %v", err)
		}
		if missing != nil {
			t.Errorf("Expected nil for unknown username, got %+v", missing)
		}
	})

	t.Run("CreateBatch and ListBatches", func(t *testing.T) {
		batch := &models.InventoryBatch{
			Quantity:     120,
			Brand:        "Acme Pharma",
			Category:     "Antibiotic",
			ReceivedDate: "2026-08-01",
		}

		if err := store.CreateBatch(ctx, batch); err != nil {
			t.Fatalf("CreateBatch failed: %v", err)
		}
		if batch.ID == "" {
			t.Error("Expected batch ID to be generated")
		}

		batches, err := store.ListBatches(ctx)
		if err != nil {
			t.Fatalf("ListBatches failed: %v", err)
		}
		if len(batches) != 1 {
			t.Fatalf("ListBatches returned %d batches, want 1", len(batches))
		}
		if batches[0].Brand != "Acme Pharma" || batches[0].Quantity != 120 {
			t.Errorf("Batch = %+v, want brand/quantity round-tripped", batches[0])
		}
	})

	t.Run("CreateMedication round-trips the dose time", func(t *testing.T) {
		timed := &models.Medication{
			Name:        "Amoxicillin",
			Description: "Broad spectrum antibiotic",
			Price:       12.5,
			InventoryID: "batch-0001",
			Dosage:      "500mg",
			TimeOfDay:   &models.TimeOfDay{Hour: 8, Minute: 30},
			Frequency:   "Once daily",
		}
		untimed := &models.Medication{
			Name:        "Vitamin D",
			Description: "As needed",
			Price:       4.0,
			InventoryID: "batch-0002",
			Dosage:      "1000IU",
			Frequency:   "Occasionally",
			Taken:       true,
		}

		if err := store.CreateMedication(ctx, timed); err != nil {
			t.Fatalf("CreateMedication failed: %v", err)
		}
		if err := store.CreateMedication(ctx, untimed); err != nil {
			t.Fatalf("CreateMedication failed: %v", err)
		}

		meds, err := store.ListMedications(ctx)
		if err != nil {
			t.Fatalf("ListMedications failed: %v", err)
		}
		if len(meds) != 2 {
			t.Fatalf("ListMedications returned %d records, want 2", len(meds))
		}

		byName := map[string]models.Medication{}
		for _, m := range meds {
			byName[m.Name] = m
		}

		got := byName["Amoxicillin"]
		if got.TimeOfDay == nil {
			t.Fatal("Expected dose time to round-trip")
		}
		if got.TimeOfDay.String() != "08:30" {
			t.Errorf("TimeOfDay = %q, want %q", got.TimeOfDay.String(), "08:30")
		}
		if got.Price != 12.5 {
			t.Errorf("Price = %v, want 12.5", got.Price)
		}

		if byName["Vitamin D"].TimeOfDay != nil {
			t.Error("Expected untimed medication to come back with nil TimeOfDay")
		}
		if !byName["Vitamin D"].Taken {
			t.Error("Expected Taken flag to round-trip")
		}
	})

	t.Run("Session lifecycle", func(t *testing.T) {
		session := &models.Session{
			ID:        "sess-1",
			Username:  "caseyadmin",
			CreatedAt: 1000,
			ExpiresAt: 2000,
		}

		if err := store.CreateSession(ctx, session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		got, err := store.GetSession(ctx, "sess-1")
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if got == nil || got.Username != "caseyadmin" || got.ExpiresAt != 2000 {
			t.Errorf("GetSession = %+v, want the stored session", got)
		}

		if err := store.DeleteSession(ctx, "sess-1"); err != nil {
			t.Fatalf("DeleteSession failed: %v", err)
		}
		gone, err := store.GetSession(ctx, "sess-1")
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if gone != nil {
			t.Errorf("Expected deleted session to be gone, got %+v", gone)
		}

		// Deleting again is not an error.
		if err := store.DeleteSession(ctx, "sess-1"); err != nil {
			t.Errorf("DeleteSession on missing session failed: %v", err)
		}
	})

	t.Run("Ping", func(t *testing.T) {
		if err := store.Ping(ctx); err != nil {
			t.Errorf("Ping failed: %v", err)
		}
	})
}
