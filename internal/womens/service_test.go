package womens

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/sultangaziagd/agdsgazi/internal/notification"
)

type fakeRepo struct {
	reports map[string]Report
}

func newFakeRepo(reports ...Report) *fakeRepo {
	m := make(map[string]Report, len(reports))
	for _, r := range reports {
		m[r.ID] = r
	}
	return &fakeRepo{reports: m}
}

func (f *fakeRepo) Create(r *Report) error { f.reports[r.ID] = *r; return nil }
func (f *fakeRepo) Update(r *Report) error { f.reports[r.ID] = *r; return nil }

func (f *fakeRepo) FindByID(id string) (Report, error) {
	r, ok := f.reports[id]
	if !ok {
		return Report{}, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRepo) ListAll() ([]Report, error) {
	out := make([]Report, 0, len(f.reports))
	for _, r := range f.reports {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) ListByUser(userID string) ([]Report, error) {
	var out []Report
	for _, r := range f.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	sent []notification.Notification
}

func (f *fakeNotifier) Broadcast(title, message, senderName string) (notification.Notification, error) {
	n := notification.Notification{Title: title, Message: message, SenderName: senderName}
	f.sent = append(f.sent, n)
	return n, nil
}

func (f *fakeNotifier) List() ([]notification.Notification, error) {
	return f.sent, nil
}

func TestApproveSetsNoteAndNotifies(t *testing.T) {
	repo := newFakeRepo(Report{ID: "wr2", UserID: "w1", NeighborhoodName: "50. Yıl Hanımlar", Date: "21.01.2025", Status: StatusPending})
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier)

	report, err := svc.Approve("wr2", "Tebrikler", "İlçe Hanımlar Bşk.")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	if report.Status != StatusApproved {
		t.Errorf("status = %s, want approved", report.Status)
	}
	if report.AdminNote != "Tebrikler" {
		t.Errorf("adminNote = %q, want Tebrikler", report.AdminNote)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(notifier.sent))
	}
	if notifier.sent[0].SenderName != "İlçe Hanımlar Bşk." {
		t.Errorf("sender = %q", notifier.sent[0].SenderName)
	}
}

func TestApproveIsOneShot(t *testing.T) {
	repo := newFakeRepo(Report{ID: "wr2", Status: StatusPending})
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier)

	if _, err := svc.Approve("wr2", "", "a1"); err != nil {
		t.Fatalf("first approve failed: %v", err)
	}
	if _, err := svc.Approve("wr2", "ikinci", "a1"); !errors.Is(err, ErrAlreadyApproved) {
		t.Fatalf("second approve: got %v, want ErrAlreadyApproved", err)
	}
	if len(notifier.sent) != 1 {
		t.Errorf("sent %d notifications, want exactly 1", len(notifier.sent))
	}

	stored, _ := repo.FindByID("wr2")
	if stored.AdminNote != "" {
		t.Errorf("second approve must not overwrite the note, got %q", stored.AdminNote)
	}
}

func TestApproveMissingReport(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeNotifier{})
	if _, err := svc.Approve("nope", "", "a1"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("got %v, want record not found", err)
	}
}
