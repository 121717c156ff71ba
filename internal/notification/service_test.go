package notification

import (
	"testing"
)

type fakeRepo struct {
	stored []Notification
}

func (f *fakeRepo) Create(n *Notification) error {
	f.stored = append(f.stored, *n)
	return nil
}

func (f *fakeRepo) ListNewestFirst() ([]Notification, error) {
	out := make([]Notification, len(f.stored))
	copy(out, f.stored)
	return out, nil
}

type fakeRoster struct {
	emails []string
	calls  int
}

func (f *fakeRoster) MemberEmails() ([]string, error) {
	f.calls++
	return f.emails, nil
}

func TestBroadcastStoresAndConsultsRoster(t *testing.T) {
	repo := &fakeRepo{}
	roster := &fakeRoster{emails: []string{"eskihabipler@agd.com", "admin@agd.com"}}
	svc := NewService(repo, roster)

	n, err := svc.Broadcast("Hafta Sonu Programı", "Cumartesi 14:00 ilçe binası.", "Hasan Hüseyin Er")
	if err != nil {
		t.Fatal(err)
	}

	if len(repo.stored) != 1 {
		t.Fatalf("stored notifications = %d, want 1", len(repo.stored))
	}
	if repo.stored[0].ID != n.ID {
		t.Error("stored notification must match the returned one")
	}
	if roster.calls != 1 {
		t.Errorf("roster consulted %d times, want 1 for mail fan-out", roster.calls)
	}
}

func TestBroadcastSurvivesNilRoster(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	if _, err := svc.Broadcast("Duyuru", "Mesaj", "Admin"); err != nil {
		t.Fatal(err)
	}
	if len(repo.stored) != 1 {
		t.Fatalf("stored notifications = %d, want 1", len(repo.stored))
	}
}
