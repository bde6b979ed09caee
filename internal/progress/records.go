package progress

import (
	"fmt"

	"github.com/google/uuid"

	"runzenAPI/internal/run"
)

// PersonalRecord is the fastest tracked run at one distance.
type PersonalRecord struct {
	Time            string    `json:"time"`
	DurationSeconds int       `json:"duration_seconds"`
	Pace            string    `json:"pace"`
	Date            string    `json:"date"` // "2026-01-15"
	RunID           uuid.UUID `json:"run_id"`
}

// PersonalRecords returns the fastest run per distance type, keyed by run
// type. Distances never attempted map to nil.
func PersonalRecords(runs []run.Entry) map[run.Type]*PersonalRecord {
	records := make(map[run.Type]*PersonalRecord, len(run.Types))
	for _, t := range run.Types {
		records[t] = nil
	}
	best := make(map[run.Type]run.Entry)
	for _, r := range runs {
		if r.CompletedAt.Before(TrackedFloor) {
			continue
		}
		b, ok := best[r.RunType]
		if !ok || r.DurationSeconds < b.DurationSeconds {
			best[r.RunType] = r
		}
	}
	for t, b := range best {
		records[t] = &PersonalRecord{
			Time:            FormatDuration(b.DurationSeconds),
			DurationSeconds: b.DurationSeconds,
			Pace:            FormatPace(b.DurationSeconds, run.Distances[t]),
			Date:            b.CompletedAt.Format("2006-01-02"),
			RunID:           b.ID,
		}
	}
	return records
}

// CheckPersonalBest decides whether newRun sets a record for its distance,
// comparing against history with newRun itself excluded. Ties never count.
// The first tracked run at a distance is a record of its own kind and is
// reported as "first_<type>" instead of "fastest_<type>".
func CheckPersonalBest(history []run.Entry, newRun run.Entry) (bool, string) {
	if newRun.CompletedAt.Before(TrackedFloor) {
		return false, ""
	}
	bestPrevious := -1
	for _, r := range history {
		if r.ID == newRun.ID || r.RunType != newRun.RunType || r.CompletedAt.Before(TrackedFloor) {
			continue
		}
		if bestPrevious < 0 || r.DurationSeconds < bestPrevious {
			bestPrevious = r.DurationSeconds
		}
	}
	if bestPrevious < 0 {
		return true, fmt.Sprintf("first_%s", newRun.RunType)
	}
	if newRun.DurationSeconds < bestPrevious {
		return true, fmt.Sprintf("fastest_%s", newRun.RunType)
	}
	return false, ""
}
