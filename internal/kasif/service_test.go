package kasif

import (
	"testing"
	"time"

	"gorm.io/gorm"
)

func TestIsRedAlarm(t *testing.T) {
	now := time.Now()
	millis := func(d time.Duration) *int64 {
		ts := now.Add(-d).UnixMilli()
		return &ts
	}

	if !IsRedAlarm(nil, now) {
		t.Error("a group that never met is always alarmed")
	}
	if IsRedAlarm(millis(3*24*time.Hour), now) {
		t.Error("3 days ago is fresh")
	}
	if IsRedAlarm(millis(13*24*time.Hour), now) {
		t.Error("13 days ago is still inside the window")
	}
	if !IsRedAlarm(millis(14*24*time.Hour), now) {
		t.Error("exactly 14 days ago counts as stale")
	}
	if !IsRedAlarm(millis(20*24*time.Hour), now) {
		t.Error("20 days ago is stale")
	}
}

type fakeRepo struct {
	groups map[string]Group
	logs   []GroupLog
}

func newFakeRepo(groups ...Group) *fakeRepo {
	m := make(map[string]Group, len(groups))
	for _, g := range groups {
		m[g.ID] = g
	}
	return &fakeRepo{groups: m}
}

func (f *fakeRepo) CreateGroup(g *Group) error { f.groups[g.ID] = *g; return nil }
func (f *fakeRepo) UpdateGroup(g *Group) error { f.groups[g.ID] = *g; return nil }

func (f *fakeRepo) FindGroupByID(id string) (Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return Group{}, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (f *fakeRepo) ListGroups() ([]Group, error) {
	out := make([]Group, 0, len(f.groups))
	for _, g := range f.groups {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeRepo) ListGroupsByNeighborhood(id string) ([]Group, error) {
	var out []Group
	for _, g := range f.groups {
		if g.NeighborhoodID == id {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateLog(l *GroupLog) error { f.logs = append(f.logs, *l); return nil }

func (f *fakeRepo) ListLogs(groupID string) ([]GroupLog, error) {
	var out []GroupLog
	for _, l := range f.logs {
		if l.GroupID == groupID {
			out = append(out, l)
		}
	}
	return out, nil
}

func TestCreateGroupStartsFresh(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	group, err := svc.CreateGroup(GroupInput{
		NeighborhoodID:   "u3",
		NeighborhoodName: "Sultançiftliği Mahallesi",
		GroupName:        "Kaşif 1. Grup",
	})
	if err != nil {
		t.Fatal(err)
	}

	if group.LastMeetingDate == nil {
		t.Fatal("a new group must start with a last meeting date")
	}
	if IsRedAlarm(group.LastMeetingDate, time.Now()) {
		t.Error("a freshly created group gets the full window before alarming")
	}
}

func TestListAlarmedFiltersFreshGroups(t *testing.T) {
	fresh := time.Now().Add(-2 * 24 * time.Hour).UnixMilli()
	stale := time.Now().Add(-30 * 24 * time.Hour).UnixMilli()
	repo := newFakeRepo(
		Group{ID: "k1", NeighborhoodID: "u1", LastMeetingDate: &fresh},
		Group{ID: "k2", NeighborhoodID: "u2", LastMeetingDate: &stale},
		Group{ID: "k3", NeighborhoodID: "u3"},
	)
	svc := NewService(repo)

	alarmed, err := svc.ListAlarmed()
	if err != nil {
		t.Fatal(err)
	}
	if len(alarmed) != 2 {
		t.Fatalf("alarmed groups = %d, want 2", len(alarmed))
	}
	for _, st := range alarmed {
		if st.ID == "k1" {
			t.Error("fresh group must not appear in the alarm list")
		}
	}
}

func TestSaveLogAdvancesLastMeeting(t *testing.T) {
	repo := newFakeRepo(Group{ID: "k1", NeighborhoodID: "u1"})
	svc := NewService(repo)

	log, err := svc.SaveLog("k1", LogInput{Week: 3, IsMeetingHeld: true, AttendanceCount: 9, ActivityDetails: "Siyer dersi"})
	if err != nil {
		t.Fatal(err)
	}

	group, _ := repo.FindGroupByID("k1")
	if group.LastMeetingDate == nil || *group.LastMeetingDate != log.Timestamp {
		t.Error("held meeting must advance the group's last meeting date")
	}
	if log.Excuse != "" {
		t.Error("a held meeting carries no excuse")
	}
}

func TestSaveLogWithoutMeeting(t *testing.T) {
	stale := time.Now().Add(-20 * 24 * time.Hour).UnixMilli()
	repo := newFakeRepo(Group{ID: "k4", NeighborhoodID: "u7", LastMeetingDate: &stale})
	svc := NewService(repo)

	log, err := svc.SaveLog("k4", LogInput{Week: 3, IsMeetingHeld: false, AttendanceCount: 7, Excuse: "Kar tatili", ActivityDetails: "yok sayılmalı"})
	if err != nil {
		t.Fatal(err)
	}

	if log.ActivityDetails != "" {
		t.Error("a skipped meeting carries no activity details")
	}
	if log.AttendanceCount != 0 {
		t.Errorf("a skipped meeting carries no attendance, got %d", log.AttendanceCount)
	}
	if log.Excuse != "Kar tatili" {
		t.Errorf("excuse = %q", log.Excuse)
	}

	group, _ := repo.FindGroupByID("k4")
	if *group.LastMeetingDate != stale {
		t.Error("a skipped meeting must not touch the last meeting date")
	}

	statuses, _ := svc.ListGroupStatuses()
	if len(statuses) != 1 || !statuses[0].RedAlarm {
		t.Error("stale group should stay alarmed after a skipped meeting")
	}
}
