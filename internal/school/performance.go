package school

import "math"

// AttendanceRate rates a president over the last ten weekly logs,
// newest first, as a whole percentage. No logs means zero.
func AttendanceRate(logs []PresidentWeeklyLog) int {
	if len(logs) == 0 {
		return 0
	}

	window := logs
	if len(window) > 10 {
		window = window[:10]
	}

	attended := 0
	for _, l := range window {
		if l.AttendedMeeting {
			attended++
		}
	}
	return int(math.Round(100 * float64(attended) / float64(len(window))))
}

// ActiveBadge decides the green performance badge from the last four
// logs, newest first. With a full four weeks one miss is tolerated;
// a shorter history must be spotless, and no history earns nothing.
func ActiveBadge(logs []PresidentWeeklyLog) bool {
	window := logs
	if len(window) > 4 {
		window = window[:4]
	}
	if len(window) == 0 {
		return false
	}

	attended := 0
	for _, l := range window {
		if l.AttendedMeeting {
			attended++
		}
	}

	if len(window) < 4 {
		return attended == len(window)
	}
	return attended >= 3
}
