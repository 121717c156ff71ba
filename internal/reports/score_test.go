package reports

import "testing"

func TestScoreSignals(t *testing.T) {
	empty := WeeklyReport{Status: StatusPending}
	if got := Score(empty); got != 0 {
		t.Errorf("empty report score = %d, want 0", got)
	}

	full := WeeklyReport{
		Status:                   StatusApproved,
		IsManagementMeetingHeld:  true,
		IsWomenMeetingHeld:       true,
		MiddleSchoolStudentCount: 25,
		HighSchoolTotalCount:     2,
	}
	if got := Score(full); got != 100 {
		t.Errorf("full report score = %d, want 100", got)
	}

	// Each signal is worth exactly 20.
	cases := []struct {
		name   string
		report WeeklyReport
	}{
		{"management meeting", WeeklyReport{IsManagementMeetingHeld: true}},
		{"women meeting", WeeklyReport{IsWomenMeetingHeld: true}},
		{"middle school students", WeeklyReport{MiddleSchoolStudentCount: 1}},
		{"high school presence", WeeklyReport{HighSchoolTotalCount: 1}},
		{"approval", WeeklyReport{Status: StatusApproved}},
	}
	for _, tc := range cases {
		if got := Score(tc.report); got != 20 {
			t.Errorf("%s alone = %d, want 20", tc.name, got)
		}
	}
}

func TestScoreIgnoresMagnitude(t *testing.T) {
	small := WeeklyReport{MiddleSchoolStudentCount: 1}
	big := WeeklyReport{MiddleSchoolStudentCount: 500}
	if Score(small) != Score(big) {
		t.Error("student count magnitude should not change the score")
	}
}

func TestTierThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  Tier
	}{
		{100, TierHigh},
		{70, TierHigh},
		{69, TierMid},
		{40, TierMid},
		{39, TierLow},
		{20, TierLow},
		{0, TierLow},
	}
	for _, tc := range cases {
		if got := TierFor(tc.score); got != tc.want {
			t.Errorf("TierFor(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
