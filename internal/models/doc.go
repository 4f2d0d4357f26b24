// Package models defines the core domain models for MedTrack.
//
// # Models
//
//   - Admin: the single administrative account role (registration/login)
//   - InventoryBatch: a received quantity of a drug category
//   - Medication: a tracked medication with an optional daily dose time
//   - Session: server-side record of a logged-in browser session
//   - TimeOfDay: a pure wall-clock time with no date component
//
// # Design Principles
//
//  1. Records carry plain exported fields; stores assign IDs and timestamps
//     when they are left unset.
//  2. Relationships are ID strings, not pointers. Medication.InventoryID
//     references an InventoryBatch but is deliberately not enforced as a
//     foreign key; the batch may be recorded later or not at all.
//  3. TimeOfDay never carries a date. Scheduling comparisons combine it with
//     the current calendar date at read time (see TimeOfDay.At).
package models
