package tasks

import "testing"

type fakeRepo struct {
	tasks       []MonthlyTask
	completions map[string]Completion
}

func newFakeRepo(tasks ...MonthlyTask) *fakeRepo {
	return &fakeRepo{tasks: tasks, completions: make(map[string]Completion)}
}

func (f *fakeRepo) CreateTask(t *MonthlyTask) error {
	f.tasks = append(f.tasks, *t)
	return nil
}

func (f *fakeRepo) ListTasks() ([]MonthlyTask, error) { return f.tasks, nil }

func (f *fakeRepo) ListTasksByMonth(month string) ([]MonthlyTask, error) {
	var out []MonthlyTask
	for _, t := range f.tasks {
		if t.TargetMonth == month {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpsertCompletion(c *Completion) error {
	f.completions[c.UserID+"/"+c.TaskID] = *c
	return nil
}

func (f *fakeRepo) ListCompletions(userID string) ([]Completion, error) {
	var out []Completion
	for _, c := range f.completions {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestPercentDone(t *testing.T) {
	cases := []struct {
		done, total, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 2, 50},
	}
	for _, tc := range cases {
		if got := PercentDone(tc.done, tc.total); got != tc.want {
			t.Errorf("PercentDone(%d, %d) = %d, want %d", tc.done, tc.total, got, tc.want)
		}
	}
}

func taskForMonth(id, month string) MonthlyTask {
	return MonthlyTask{ID: id, Title: id, TargetMonth: month, TargetAudience: AudienceAll}
}

func TestProgressMatchesExactMonthLabel(t *testing.T) {
	repo := newFakeRepo(
		taskForMonth("t1", "Aralık 2025"),
		taskForMonth("t2", "Aralık 2025"),
		taskForMonth("t3", "Ocak 2026"),
	)
	svc := NewService(repo)

	progress, err := svc.ProgressFor("u1", "Aralık 2025")
	if err != nil {
		t.Fatal(err)
	}
	if len(progress.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(progress.Tasks))
	}

	// A differently spelled label matches nothing.
	progress, err = svc.ProgressFor("u1", "aralık 2025")
	if err != nil {
		t.Fatal(err)
	}
	if len(progress.Tasks) != 0 {
		t.Errorf("lowercase label matched %d tasks, want 0", len(progress.Tasks))
	}
}

func TestProgressPercent(t *testing.T) {
	repo := newFakeRepo(
		taskForMonth("t1", "Aralık 2025"),
		taskForMonth("t2", "Aralık 2025"),
		taskForMonth("t3", "Aralık 2025"),
	)
	svc := NewService(repo)

	progress, _ := svc.ProgressFor("u1", "Aralık 2025")
	if progress.Percent != 0 {
		t.Errorf("empty progress = %d%%, want 0", progress.Percent)
	}

	if _, err := svc.SaveCompletion("u1", "t1", true, "otobüs ayarlandı"); err != nil {
		t.Fatal(err)
	}

	progress, _ = svc.ProgressFor("u1", "Aralık 2025")
	if progress.Percent != 33 {
		t.Errorf("one of three done = %d%%, want 33", progress.Percent)
	}

	// Toggling back restores the previous percentage.
	if _, err := svc.SaveCompletion("u1", "t1", false, ""); err != nil {
		t.Fatal(err)
	}
	progress, _ = svc.ProgressFor("u1", "Aralık 2025")
	if progress.Percent != 0 {
		t.Errorf("after toggle back = %d%%, want 0", progress.Percent)
	}
}

func TestSaveCompletionReplacesWholesale(t *testing.T) {
	repo := newFakeRepo(taskForMonth("t1", "Aralık 2025"))
	svc := NewService(repo)

	if _, err := svc.SaveCompletion("u1", "t1", true, "ilk not"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SaveCompletion("u1", "t1", true, ""); err != nil {
		t.Fatal(err)
	}

	progress, _ := svc.ProgressFor("u1", "Aralık 2025")
	c, ok := progress.Completion["t1"]
	if !ok {
		t.Fatal("completion missing")
	}
	if c.Note != "" {
		t.Errorf("note = %q, want empty after full replacement", c.Note)
	}

	// Another user's progress is untouched.
	other, _ := svc.ProgressFor("u2", "Aralık 2025")
	if len(other.Completion) != 0 {
		t.Error("completion leaked across users")
	}
}
