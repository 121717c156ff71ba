package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sultangaziagd/agdsgazi/config"
)

type fakeRepo struct {
	users map[string]AppUser
}

func newFakeRepo(users ...AppUser) *fakeRepo {
	m := make(map[string]AppUser, len(users))
	for _, u := range users {
		m[u.UID] = u
	}
	return &fakeRepo{users: m}
}

func (f *fakeRepo) FindByEmail(email string) (AppUser, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return AppUser{}, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByID(uid string) (AppUser, error) {
	u, ok := f.users[uid]
	if !ok {
		return AppUser{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeRepo) Create(u *AppUser) error { f.users[u.UID] = *u; return nil }
func (f *fakeRepo) Update(u *AppUser) error { f.users[u.UID] = *u; return nil }

func (f *fakeRepo) ListByRole(role Role) ([]AppUser, error) {
	var out []AppUser
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAll() ([]AppUser, error) {
	out := make([]AppUser, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:    "test-access",
		JWTRefreshSecret:   "test-refresh",
		JWTAccessTTLHours:  1,
		JWTRefreshTTLHours: 24,
	}
}

func TestLoginErrorIsUniform(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("dogrusifre"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := newFakeRepo(AppUser{
		UID:          "u1",
		Email:        "eskihabipler@agd.com",
		Role:         RoleUser,
		PasswordHash: string(hash),
	})
	svc := NewService(repo, testConfig())

	_, _, unknownErr := svc.Login(LoginInput{Email: "yok@agd.com", Password: "dogrusifre"})
	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("unknown account error = %v", unknownErr)
	}

	_, _, wrongErr := svc.Login(LoginInput{Email: "eskihabipler@agd.com", Password: "yanlis"})
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v", wrongErr)
	}

	// The two failures must be indistinguishable to the caller.
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("login errors differ: %q vs %q", unknownErr, wrongErr)
	}

	tokens, user, err := svc.Login(LoginInput{Email: "eskihabipler@agd.com", Password: "dogrusifre"})
	if err != nil {
		t.Fatal(err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("successful login must issue both tokens")
	}
	if user.UID != "u1" {
		t.Errorf("user = %q", user.UID)
	}
}

func TestMemberEmailsSkipsBlanks(t *testing.T) {
	repo := newFakeRepo(
		AppUser{UID: "u1", Email: "eskihabipler@agd.com", Role: RoleUser},
		AppUser{UID: "u2", Email: "", Role: RoleUser},
		AppUser{UID: "a1", Email: "admin@agd.com", Role: RoleAdmin},
	)
	svc := NewService(repo, testConfig())

	emails, err := svc.MemberEmails()
	if err != nil {
		t.Fatal(err)
	}
	if len(emails) != 2 {
		t.Fatalf("emails = %v, want 2 addresses", emails)
	}
	for _, e := range emails {
		if e == "" {
			t.Error("blank address must be skipped")
		}
	}
}
