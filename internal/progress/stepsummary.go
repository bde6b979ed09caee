package progress

import (
	"sort"
	"time"

	"runzenAPI/internal/steps"
)

const monthKeyLayout = "2006-01"

// StepsSummary groups step entries by calendar month. Multiple entries on the
// same date collapse to the highest count for threshold-day counting, but all
// entries count toward totals.
func StepsSummary(entries []steps.Entry, now time.Time) *steps.Summary {
	byMonth := make(map[string][]steps.Entry)
	for _, e := range entries {
		if e.RecordedDate.Before(TrackedFloor) {
			continue
		}
		key := e.RecordedDate.Format(monthKeyLayout)
		byMonth[key] = append(byMonth[key], e)
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	summary := &steps.Summary{MonthlyHistory: []steps.MonthSummary{}}
	currentKey := now.Format(monthKeyLayout)
	for _, k := range keys {
		ms := summarizeMonth(k, byMonth[k])
		summary.AllTime.Days15K += ms.Days15K
		summary.AllTime.Days20K += ms.Days20K
		summary.AllTime.Days25K += ms.Days25K
		summary.AllTime.TotalEntries += ms.TotalEntries
		if k == currentKey {
			current := ms
			summary.CurrentMonth = &current
		}
		summary.MonthlyHistory = append(summary.MonthlyHistory, ms)
	}
	// A month with no entries yet still reports a zeroed current month.
	if summary.CurrentMonth == nil {
		summary.CurrentMonth = &steps.MonthSummary{Month: now.Format("Jan 2006")}
	}
	return summary
}

func summarizeMonth(key string, entries []steps.Entry) steps.MonthSummary {
	t, _ := time.ParseInLocation(monthKeyLayout, key, time.Local)
	ms := steps.MonthSummary{
		Month:        t.Format("Jan 2006"),
		TotalEntries: len(entries),
	}
	bestByDate := make(map[string]int)
	for _, e := range entries {
		day := e.RecordedDate.Format("2006-01-02")
		if e.StepCount > bestByDate[day] {
			bestByDate[day] = e.StepCount
		}
		if e.StepCount > ms.Highest {
			ms.Highest = e.StepCount
		}
	}
	for _, count := range bestByDate {
		if count >= steps.Threshold15K {
			ms.Days15K++
		}
		if count >= steps.Threshold20K {
			ms.Days20K++
		}
		if count >= steps.Threshold25K {
			ms.Days25K++
		}
	}
	return ms
}
