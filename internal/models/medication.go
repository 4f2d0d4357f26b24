package models

// Medication represents a tracked medication with an optional daily dose
// time. The dashboard partitions these records into upcoming and taken by
// comparing TimeOfDay against the current clock.
type Medication struct {
	// ID is the unique identifier for the record (UUID format).
	ID string

	// Name is the medication name (e.g. "Amoxicillin").
	Name string

	// Description is free-form text about the medication.
	Description string

	// Price is the unit price in USD. Never negative.
	Price float64

	// InventoryID references the InventoryBatch this medication came from.
	// Not enforced as a foreign key; the batch may not be recorded.
	InventoryID string

	// Dosage is the dose description (e.g. "500mg").
	Dosage string

	// TimeOfDay is the daily dose time, or nil when no time is scheduled.
	// Records without a time never appear in the dashboard lists.
	TimeOfDay *TimeOfDay

	// Frequency is the dosing frequency description (e.g. "Once daily").
	Frequency string

	// Taken records whether the dose was confirmed taken. Defaults to false.
	// The dashboard partition ignores this flag; it feeds only the
	// taken-flag count.
	Taken bool

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64
}
