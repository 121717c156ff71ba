package reports

import "time"

const (
	weekMillis  = int64(7 * 24 * time.Hour / time.Millisecond)
	monthMillis = int64(30 * 24 * time.Hour / time.Millisecond)
)

// ParseWindow maps a query parameter to a Window, defaulting to week.
func ParseWindow(s string) Window {
	switch Window(s) {
	case WindowMonth:
		return WindowMonth
	case WindowAll:
		return WindowAll
	default:
		return WindowWeek
	}
}

// FilterByWindow keeps the reports whose timestamp falls inside the
// window measured back from now. The boundary is exclusive: a report
// exactly one window old is dropped. The input is not modified.
func FilterByWindow(all []WeeklyReport, window Window, now int64) []WeeklyReport {
	if window == WindowAll {
		out := make([]WeeklyReport, len(all))
		copy(out, all)
		return out
	}

	span := weekMillis
	if window == WindowMonth {
		span = monthMillis
	}

	out := make([]WeeklyReport, 0, len(all))
	for _, r := range all {
		if now-r.Timestamp < span {
			out = append(out, r)
		}
	}
	return out
}

// Snapshots reduces window-filtered reports to the latest report per
// neighborhood. Reports must arrive newest first; the first one seen
// for each neighborhood name wins. Grouping is by display name so a
// renamed account starts a fresh series, matching how the district
// has always read these numbers.
func Snapshots(filtered []WeeklyReport) []WeeklyReport {
	seen := make(map[string]struct{}, len(filtered))
	out := make([]WeeklyReport, 0, len(filtered))
	for _, r := range filtered {
		if _, ok := seen[r.NeighborhoodName]; ok {
			continue
		}
		seen[r.NeighborhoodName] = struct{}{}
		out = append(out, r)
	}
	return out
}

// SumActivity totals the flow metrics across every filtered report.
// A held management meeting counts one middle school chat; the chats
// are run alongside the weekly meeting and are not reported on their
// own.
func SumActivity(filtered []WeeklyReport) ActivityTotals {
	var t ActivityTotals
	for _, r := range filtered {
		t.ManagementAttendance += r.ManagementAttendanceCount
		t.WomenMeetingAttendance += r.WomenMeetingAttendance
		if r.IsManagementMeetingHeld {
			t.MiddleSchoolChats++
		}
		t.HighSchoolChatAttendance += r.HighSchoolChatAttendance
		t.GeneralChatAttendance += r.GeneralChatAttendance
	}
	return t
}

// SumStock totals standing counts over the snapshots only.
func SumStock(snapshots []WeeklyReport) StockTotals {
	var t StockTotals
	for _, r := range snapshots {
		t.ManagementTotal += r.ManagementTotalCount
		t.MiddleSchoolStudents += r.MiddleSchoolStudentCount
		t.HighSchoolTotal += r.HighSchoolTotalCount
		t.HighSchoolReadingGroups += r.HighSchoolReadingGroupCount
	}
	return t
}

// Summarize builds the district dashboard payload from reports sorted
// newest first.
func Summarize(all []WeeklyReport, window Window, now int64) DistrictSummary {
	filtered := FilterByWindow(all, window, now)
	snapshots := Snapshots(filtered)
	return DistrictSummary{
		Window:            window,
		NeighborhoodCount: len(snapshots),
		Snapshots:         snapshots,
		Activity:          SumActivity(filtered),
		Stock:             SumStock(snapshots),
	}
}
