package profile

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sultangaziagd/agdsgazi/internal/auth"
)

// District center, the map fallback when an account has no
// coordinates of its own.
const (
	defaultLat = 41.1068
	defaultLng = 28.8700
)

type Service interface {
	Get(userID string) (NeighborhoodProfile, error)
	Save(userID string, input SaveInput) (NeighborhoodProfile, error)
}

type service struct {
	repo    Repository
	authSvc auth.Service
}

func NewService(r Repository, authSvc auth.Service) Service {
	return &service{repo: r, authSvc: authSvc}
}

// SaveInput replaces the profile wholesale; partial updates are the
// client's concern.
type SaveInput struct {
	ManagementCount   int      `json:"managementCount"`
	MiddleSchoolCount int      `json:"middleSchoolCount"`
	HighSchoolCount   int      `json:"highSchoolCount"`
	KasifGroupCount   int      `json:"kasifGroupCount"`
	KaravanGroupCount int      `json:"karavanGroupCount"`
	TotalMembersCount int      `json:"totalMembersCount"`
	Lat               *float64 `json:"latitude"`
	Lng               *float64 `json:"longitude"`
	SuccessScore      int      `json:"successScore"`
}

// Get returns the stored profile, or a zeroed default placed at the
// account's coordinates. Nothing is written until the first save.
func (s *service) Get(userID string) (NeighborhoodProfile, error) {
	p, err := s.repo.FindByUserID(userID)
	if err == nil {
		s.fillCoordinates(userID, &p)
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return NeighborhoodProfile{}, err
	}

	p = NeighborhoodProfile{
		UserID:    userID,
		UpdatedAt: time.Now().UnixMilli(),
	}
	s.fillCoordinates(userID, &p)
	return p, nil
}

// fillCoordinates backfills missing map placement from the account,
// then from the district center.
func (s *service) fillCoordinates(userID string, p *NeighborhoodProfile) {
	if p.Lat != nil && p.Lng != nil {
		return
	}

	if user, err := s.authSvc.GetUserByID(userID); err == nil && user.Lat != nil && user.Lng != nil {
		p.Lat = user.Lat
		p.Lng = user.Lng
		return
	}

	lat, lng := defaultLat, defaultLng
	p.Lat = &lat
	p.Lng = &lng
}

func (s *service) Save(userID string, in SaveInput) (NeighborhoodProfile, error) {
	p := NeighborhoodProfile{
		UserID:            userID,
		ManagementCount:   in.ManagementCount,
		MiddleSchoolCount: in.MiddleSchoolCount,
		HighSchoolCount:   in.HighSchoolCount,
		KasifGroupCount:   in.KasifGroupCount,
		KaravanGroupCount: in.KaravanGroupCount,
		TotalMembersCount: in.TotalMembersCount,
		Lat:               in.Lat,
		Lng:               in.Lng,
		SuccessScore:      in.SuccessScore,
		UpdatedAt:         time.Now().UnixMilli(),
	}

	if err := s.repo.Upsert(&p); err != nil {
		return NeighborhoodProfile{}, err
	}

	s.fillCoordinates(userID, &p)
	return p, nil
}
