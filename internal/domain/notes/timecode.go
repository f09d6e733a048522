package notes

import (
	"fmt"
	"math"
)

const secondsPerDay = 24 * 60 * 60

// FormatTimecode renders an offset in seconds as HH:MM:SS.
//
// Fractional seconds are floored and whole days are discarded, so 90000s
// (25h) renders as "01:00:00".
func FormatTimecode(sec float64) string {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return "00:00:00"
	}
	s := math.Mod(math.Floor(sec), secondsPerDay)
	if s < 0 {
		s += secondsPerDay
	}
	total := int(s)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
