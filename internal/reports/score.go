package reports

// Tier buckets a report score for map and PDF coloring.
type Tier string

const (
	TierHigh Tier = "high"
	TierMid  Tier = "mid"
	TierLow  Tier = "low"
)

// Score rates a weekly report 0-100. Five equally weighted signals:
// management meeting held, women's meeting held, any middle school
// students, any high school presence, and district approval.
func Score(r WeeklyReport) int {
	score := 0
	if r.IsManagementMeetingHeld {
		score += 20
	}
	if r.IsWomenMeetingHeld {
		score += 20
	}
	if r.MiddleSchoolStudentCount > 0 {
		score += 20
	}
	if r.HighSchoolTotalCount > 0 {
		score += 20
	}
	if r.Status == StatusApproved {
		score += 20
	}
	return score
}

// TierFor maps a score to its display tier. 70 and above is high
// (green), 40 and above is mid (amber), everything else low (red).
func TierFor(score int) Tier {
	switch {
	case score >= 70:
		return TierHigh
	case score >= 40:
		return TierMid
	default:
		return TierLow
	}
}

// TierColor returns the RGB used by both the map legend and the PDF
// score badge.
func TierColor(tier Tier) (r, g, b int) {
	switch tier {
	case TierHigh:
		return 0, 100, 0
	case TierMid:
		return 217, 119, 6
	default:
		return 200, 0, 0
	}
}
