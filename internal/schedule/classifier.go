// Package schedule classifies medication records against the current clock
// for dashboard display.
package schedule

import (
	"sort"
	"time"

	"medtrack/internal/models"
)

// Entry is one medication prepared for display: the record, the instant its
// dose time falls on today's date, and the zero-padded HH:MM display string.
type Entry struct {
	Medication  models.Medication
	At          time.Time
	DisplayTime string
}

// Dashboard is the classified view of the full medication set at one instant.
//
// Upcoming and Taken partition the timed records purely by clock: a record
// whose dose instant is strictly after now is upcoming, otherwise it counts
// as taken for display. The Taken flag on records does NOT drive the
// partition; it feeds only TakenFlagCount.
type Dashboard struct {
	// Upcoming holds records whose dose instant is strictly after now,
	// soonest first.
	Upcoming []Entry

	// Taken holds records whose dose instant is at or before now, most
	// recently passed first.
	Taken []Entry

	// Total counts every record, including those with no dose time.
	Total int

	// DueSoon counts records whose dose instant falls at or before now
	// plus one hour.
	DueSoon int

	// TakenFlagCount counts records whose Taken flag is set and whose dose
	// instant is strictly before now.
	TakenFlagCount int
}

// Classify partitions, orders and counts the given medication records
// relative to now. Records with no dose time are excluded from both lists and
// from DueSoon/TakenFlagCount (no instant can be built for them) but still
// count toward Total, so Total equals len(Upcoming)+len(Taken)+untimed.
//
// Ordering is deterministic: equal instants tie-break on record ID, ascending
// in Upcoming and descending in Taken (the descending list reverses the whole
// comparison). Classifying the same records at the same instant twice yields
// identical output.
func Classify(now time.Time, meds []models.Medication) Dashboard {
	d := Dashboard{Total: len(meds)}
	soonCutoff := now.Add(time.Hour)

	for _, med := range meds {
		if med.TimeOfDay == nil {
			continue
		}
		at := med.TimeOfDay.At(now)
		entry := Entry{
			Medication:  med,
			At:          at,
			DisplayTime: med.TimeOfDay.String(),
		}

		if at.After(now) {
			d.Upcoming = append(d.Upcoming, entry)
		} else {
			d.Taken = append(d.Taken, entry)
		}

		if !at.After(soonCutoff) {
			d.DueSoon++
		}
		if med.Taken && at.Before(now) {
			d.TakenFlagCount++
		}
	}

	sort.Slice(d.Upcoming, func(i, j int) bool {
		a, b := d.Upcoming[i], d.Upcoming[j]
		if !a.At.Equal(b.At) {
			return a.At.Before(b.At)
		}
		return a.Medication.ID < b.Medication.ID
	})
	sort.Slice(d.Taken, func(i, j int) bool {
		a, b := d.Taken[i], d.Taken[j]
		if !a.At.Equal(b.At) {
			return a.At.After(b.At)
		}
		return a.Medication.ID > b.Medication.ID
	})

	return d
}
