package progress

import (
	"fmt"
	"math"
)

// FormatDuration renders seconds as "m:ss", or "h:mm:ss" from one hour up.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatPace renders seconds-per-km as "m:ss". A non-positive distance
// yields "0:00" so reads never fail on empty history.
func FormatPace(durationSeconds int, distanceKm float64) string {
	if distanceKm <= 0 || durationSeconds <= 0 {
		return "0:00"
	}
	secPerKm := int(float64(durationSeconds) / distanceKm)
	return fmt.Sprintf("%d:%02d", secPerKm/60, secPerKm%60)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
