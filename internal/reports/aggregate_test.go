package reports

import (
	"testing"
	"time"
)

const dayMillis = int64(24 * time.Hour / time.Millisecond)

func report(id, neighborhood string, ageDays int64, now int64) WeeklyReport {
	return WeeklyReport{
		ID:               id,
		NeighborhoodName: neighborhood,
		Timestamp:        now - ageDays*dayMillis,
	}
}

func TestFilterByWindowBoundaries(t *testing.T) {
	now := time.Now().UnixMilli()
	all := []WeeklyReport{
		report("fresh", "A", 1, now),
		report("sixDays", "B", 6, now),
		report("exactlyWeek", "C", 7, now),
		report("old", "D", 20, now),
		report("ancient", "E", 45, now),
	}

	week := FilterByWindow(all, WindowWeek, now)
	if len(week) != 2 {
		t.Fatalf("week window kept %d reports, want 2", len(week))
	}
	// A report exactly one window old falls outside it.
	for _, r := range week {
		if r.ID == "exactlyWeek" {
			t.Error("report exactly 7 days old should be excluded from the week window")
		}
	}

	month := FilterByWindow(all, WindowMonth, now)
	if len(month) != 4 {
		t.Errorf("month window kept %d reports, want 4", len(month))
	}

	if got := FilterByWindow(all, WindowAll, now); len(got) != len(all) {
		t.Errorf("all window kept %d reports, want %d", len(got), len(all))
	}
}

func TestFilterByWindowDoesNotMutateInput(t *testing.T) {
	now := time.Now().UnixMilli()
	all := []WeeklyReport{
		report("a", "A", 1, now),
		report("b", "B", 40, now),
	}

	filtered := FilterByWindow(all, WindowWeek, now)
	if len(filtered) != 1 {
		t.Fatalf("filtered %d, want 1", len(filtered))
	}
	filtered[0].NeighborhoodName = "changed"
	if all[0].NeighborhoodName != "A" {
		t.Error("filtering must not alias the input slice")
	}
}

func TestSnapshotsKeepNewestPerNeighborhood(t *testing.T) {
	now := time.Now().UnixMilli()
	// Newest first, as the repository returns them.
	all := []WeeklyReport{
		{ID: "n1", NeighborhoodName: "Cebeci", Timestamp: now, MiddleSchoolStudentCount: 12},
		{ID: "n2", NeighborhoodName: "Yayla", Timestamp: now - dayMillis, MiddleSchoolStudentCount: 7},
		{ID: "n3", NeighborhoodName: "Cebeci", Timestamp: now - 2*dayMillis, MiddleSchoolStudentCount: 10},
	}

	snaps := Snapshots(all)
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snaps))
	}
	if snaps[0].ID != "n1" || snaps[1].ID != "n2" {
		t.Errorf("snapshot order wrong: %s, %s", snaps[0].ID, snaps[1].ID)
	}
}

func TestStockVersusActivityTotals(t *testing.T) {
	now := time.Now().UnixMilli()
	// Same neighborhood reports 10 students then 12. The stock total
	// must read 12 (latest only) while flow metrics count both weeks.
	all := []WeeklyReport{
		{ID: "w2", NeighborhoodName: "Cebeci", Timestamp: now,
			MiddleSchoolStudentCount: 12, ManagementAttendanceCount: 6, IsManagementMeetingHeld: true},
		{ID: "w1", NeighborhoodName: "Cebeci", Timestamp: now - dayMillis,
			MiddleSchoolStudentCount: 10, ManagementAttendanceCount: 5, IsManagementMeetingHeld: true},
	}

	snaps := Snapshots(all)
	stock := SumStock(snaps)
	if stock.MiddleSchoolStudents != 12 {
		t.Errorf("stock students = %d, want 12", stock.MiddleSchoolStudents)
	}

	activity := SumActivity(all)
	if activity.ManagementAttendance != 11 {
		t.Errorf("activity attendance = %d, want 11", activity.ManagementAttendance)
	}
	if activity.MiddleSchoolChats != 2 {
		t.Errorf("middle school chats = %d, want 2", activity.MiddleSchoolChats)
	}
}

func TestSummarizeSeedScenario(t *testing.T) {
	now := time.Now().UnixMilli()
	// Mirrors the demo data: three neighborhoods, distinct weeks.
	all := []WeeklyReport{
		{ID: "r1", UserID: "u1", NeighborhoodName: "50. Yıl Mahallesi", Timestamp: now - 86400000,
			Status: StatusApproved, ManagementAttendanceCount: 10, MiddleSchoolStudentCount: 25,
			HighSchoolTotalCount: 2, IsManagementMeetingHeld: true},
		{ID: "r2", UserID: "u6", NeighborhoodName: "Cebeci Mahallesi", Timestamp: now - 90000000,
			Status: StatusPending, ManagementAttendanceCount: 5, MiddleSchoolStudentCount: 8,
			HighSchoolTotalCount: 1, IsManagementMeetingHeld: true},
		{ID: "r3", UserID: "u2", NeighborhoodName: "Uğur Mumcu Mahallesi", Timestamp: now - 170000000,
			Status: StatusApproved, ManagementAttendanceCount: 7, MiddleSchoolStudentCount: 12,
			HighSchoolTotalCount: 1, IsManagementMeetingHeld: true},
	}

	summary := Summarize(all, WindowAll, now)

	if summary.NeighborhoodCount != 3 {
		t.Errorf("neighborhood count = %d, want 3", summary.NeighborhoodCount)
	}
	if summary.Stock.MiddleSchoolStudents != 45 {
		t.Errorf("middle school students stock = %d, want 45", summary.Stock.MiddleSchoolStudents)
	}
	if summary.Activity.ManagementAttendance != 22 {
		t.Errorf("management attendance = %d, want 22", summary.Activity.ManagementAttendance)
	}
}

func TestParseWindow(t *testing.T) {
	if ParseWindow("month") != WindowMonth {
		t.Error("month not recognized")
	}
	if ParseWindow("all") != WindowAll {
		t.Error("all not recognized")
	}
	if ParseWindow("") != WindowWeek {
		t.Error("empty window should default to week")
	}
	if ParseWindow("bogus") != WindowWeek {
		t.Error("unknown window should default to week")
	}
}
