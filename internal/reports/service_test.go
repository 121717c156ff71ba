package reports

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/sultangaziagd/agdsgazi/internal/auth"
)

type fakeRepo struct {
	reports []WeeklyReport
}

func (f *fakeRepo) Create(r *WeeklyReport) error {
	f.reports = append(f.reports, *r)
	return nil
}

func (f *fakeRepo) Update(r *WeeklyReport) error {
	for i := range f.reports {
		if f.reports[i].ID == r.ID {
			f.reports[i] = *r
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByID(id string) (WeeklyReport, error) {
	for _, r := range f.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return WeeklyReport{}, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListAll() ([]WeeklyReport, error) {
	out := make([]WeeklyReport, len(f.reports))
	copy(out, f.reports)
	return out, nil
}

func (f *fakeRepo) ListByUser(userID string) ([]WeeklyReport, error) {
	var out []WeeklyReport
	for _, r := range f.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeAuth struct {
	neighborhoods []auth.AppUser
}

func (f *fakeAuth) Login(auth.LoginInput) (*auth.TokenPair, *auth.AppUser, error) {
	return nil, nil, auth.ErrInvalidCredentials
}
func (f *fakeAuth) Refresh(string) (string, error) { return "", nil }
func (f *fakeAuth) GetUserByID(string) (auth.AppUser, error) {
	return auth.AppUser{}, gorm.ErrRecordNotFound
}
func (f *fakeAuth) ListNeighborhoodUsers() ([]auth.AppUser, error) { return f.neighborhoods, nil }
func (f *fakeAuth) MemberEmails() ([]string, error)                { return nil, nil }
func (f *fakeAuth) RequestPasswordReset(string) error              { return nil }
func (f *fakeAuth) ResetPassword(string, string) error             { return nil }
func (f *fakeAuth) Logout() error                                  { return nil }

func coord(v float64) *float64 { return &v }

func TestMapMarkersKeyedByAccount(t *testing.T) {
	now := time.Now().UnixMilli()

	// Two accounts share a display name; each must keep its own marker.
	repo := &fakeRepo{reports: []WeeklyReport{
		{
			ID: "r1", UserID: "u1", NeighborhoodName: "Cumhuriyet Mahallesi",
			Timestamp:                now - 1000,
			IsManagementMeetingHeld:  true,
			IsWomenMeetingHeld:       true,
			MiddleSchoolStudentCount: 10,
			HighSchoolTotalCount:     2,
			Status:                   StatusApproved,
		},
		{
			ID: "r2", UserID: "u2", NeighborhoodName: "Cumhuriyet Mahallesi",
			Timestamp: now - 2000,
		},
	}}
	authSvc := &fakeAuth{neighborhoods: []auth.AppUser{
		{UID: "u1", Name: "Cumhuriyet Mahallesi", Role: auth.RoleUser, Lat: coord(41.10), Lng: coord(28.87)},
		{UID: "u2", Name: "Cumhuriyet Mahallesi", Role: auth.RoleUser, Lat: coord(41.11), Lng: coord(28.88)},
		{UID: "u3", Name: "Yunus Emre Mahallesi", Role: auth.RoleUser, Lat: coord(41.12), Lng: coord(28.89)},
	}}
	svc := NewService(repo, authSvc)

	markers, err := svc.MapMarkers(WindowAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(markers) != 3 {
		t.Fatalf("markers = %d, want 3", len(markers))
	}

	byUser := make(map[string]MapMarker, len(markers))
	for _, m := range markers {
		byUser[m.UserID] = m
	}

	if m := byUser["u1"]; !m.HasReport || m.Score != 100 {
		t.Errorf("u1 marker = %+v, want full score from its own report", m)
	}
	if m := byUser["u2"]; !m.HasReport || m.Score != 0 {
		t.Errorf("u2 marker = %+v, want its own zero-signal report", m)
	}
	if m := byUser["u3"]; m.HasReport || m.Tier != TierLow {
		t.Errorf("u3 marker = %+v, want reportless red marker", m)
	}
}

func TestMapMarkersPickLatestPerAccount(t *testing.T) {
	now := time.Now().UnixMilli()
	repo := &fakeRepo{reports: []WeeklyReport{
		{ID: "old", UserID: "u1", NeighborhoodName: "Esentepe Mahallesi", Timestamp: now - 5000,
			IsManagementMeetingHeld: true},
		{ID: "new", UserID: "u1", NeighborhoodName: "Esentepe Mahallesi", Timestamp: now - 1000},
	}}
	authSvc := &fakeAuth{neighborhoods: []auth.AppUser{
		{UID: "u1", Name: "Esentepe Mahallesi", Role: auth.RoleUser, Lat: coord(41.10), Lng: coord(28.87)},
	}}
	svc := NewService(repo, authSvc)

	markers, err := svc.MapMarkers(WindowAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(markers) != 1 {
		t.Fatalf("markers = %d, want 1", len(markers))
	}
	if markers[0].Score != 0 {
		t.Errorf("score = %d, want the newer report's score", markers[0].Score)
	}
}
