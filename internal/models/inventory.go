package models

// InventoryBatch represents a received quantity of a drug category, tracked
// independently of the specific medications dispensed from it.
type InventoryBatch struct {
	// ID is the unique identifier for the batch (UUID format).
	ID string

	// Quantity is the number of units received. Never negative.
	Quantity int

	// Brand is the manufacturer or brand name.
	Brand string

	// Category is the drug category (e.g. "Antibiotic").
	Category string

	// ReceivedDate is the calendar date the batch arrived, "YYYY-MM-DD".
	ReceivedDate string

	// CreatedAt is the Unix timestamp when the batch was recorded.
	CreatedAt int64
}
