package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sultangaziagd/agdsgazi/config"
	"github.com/sultangaziagd/agdsgazi/utils"
)

type Service interface {
	Login(input LoginInput) (*TokenPair, *AppUser, error)
	Refresh(refreshToken string) (string, error)
	GetUserByID(uid string) (AppUser, error)
	ListNeighborhoodUsers() ([]AppUser, error)
	MemberEmails() ([]string, error)

	RequestPasswordReset(email string) error
	ResetPassword(token string, newPassword string) error
	Logout() error
}

type service struct {
	repo          Repository
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(r Repository, cfg *config.Config) Service {
	return &service{
		repo:          r,
		accessSecret:  cfg.JWTAccessSecret,
		refreshSecret: cfg.JWTRefreshSecret,
		accessTTL:     time.Duration(cfg.JWTAccessTTLHours) * time.Hour,
		refreshTTL:    time.Duration(cfg.JWTRefreshTTLHours) * time.Hour,
	}
}

// =============================
// Login
// =============================

type LoginInput struct {
	Email    string
	Password string
}

// ErrInvalidCredentials covers both an unknown account and a wrong
// password, so a caller cannot probe which addresses exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

func (s *service) Login(in LoginInput) (*TokenPair, *AppUser, error) {
	user, err := s.repo.FindByEmail(in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(&user)
	if err != nil {
		return nil, nil, err
	}
	refreshToken, err := s.generateRefreshToken(&user)
	if err != nil {
		return nil, nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, &user, nil
}

func (s *service) generateAccessToken(user *AppUser) (string, error) {
	claims := jwt.MapClaims{
		"uid":  user.UID,
		"role": string(user.Role),
		"exp":  time.Now().Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

func (s *service) generateRefreshToken(user *AppUser) (string, error) {
	claims := jwt.MapClaims{
		"uid": user.UID,
		"exp": time.Now().Add(s.refreshTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.refreshSecret))
}

// =============================
// Refresh
// =============================

func (s *service) Refresh(refreshToken string) (string, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["uid"] == nil {
		return "", errors.New("invalid token claims")
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	user, err := s.repo.FindByID(uid)
	if err != nil {
		return "", errors.New("user not found")
	}

	return s.generateAccessToken(&user)
}

// =============================
// Forgot Password
// =============================

func (s *service) RequestPasswordReset(email string) error {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return errors.New("user not found")
	}

	resetToken := generateSecureToken()
	key := fmt.Sprintf("reset_token:%s", resetToken)

	if err := utils.SetToken(key, user.UID, 15*time.Minute); err != nil {
		return errors.New("could not save reset token")
	}

	if err := utils.SendResetLink(user.Email, resetToken); err != nil {
		return errors.New("failed to send email")
	}

	return nil
}

func (s *service) ResetPassword(token string, newPassword string) error {
	key := fmt.Sprintf("reset_token:%s", token)
	uid, err := utils.GetToken(key)
	if err != nil {
		return errors.New("invalid or expired token")
	}

	user, err := s.repo.FindByID(uid)
	if err != nil {
		return errors.New("user not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	if err := s.repo.Update(&user); err != nil {
		return errors.New("failed to update password")
	}

	_ = utils.DeleteToken(key)

	return nil
}

// =============================
// Logout
// =============================

func (s *service) Logout() error {
	// JWT is stateless, the client just drops the token pair.
	return nil
}

func (s *service) GetUserByID(uid string) (AppUser, error) {
	return s.repo.FindByID(uid)
}

// ListNeighborhoodUsers returns the accounts that submit weekly
// reports, i.e. one per neighborhood.
func (s *service) ListNeighborhoodUsers() ([]AppUser, error) {
	return s.repo.ListByRole(RoleUser)
}

// MemberEmails lists every account's address for broadcast mail.
func (s *service) MemberEmails() ([]string, error) {
	users, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(users))
	for _, u := range users {
		if u.Email != "" {
			emails = append(emails, u.Email)
		}
	}
	return emails, nil
}

func generateSecureToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
