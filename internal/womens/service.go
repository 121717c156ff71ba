package womens

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sultangaziagd/agdsgazi/internal/auth"
	"github.com/sultangaziagd/agdsgazi/internal/notification"
)

var ErrAlreadyApproved = errors.New("womens report already approved")

type Service interface {
	Submit(user auth.AppUser, input SubmitInput) (Report, error)
	ListForUser(user auth.AppUser) ([]Report, error)
	Approve(id, adminNote, approverName string) (Report, error)
}

type service struct {
	repo      Repository
	notifySvc notification.Service
}

func NewService(r Repository, notifySvc notification.Service) Service {
	return &service{repo: r, notifySvc: notifySvc}
}

// SubmitInput carries the women's commission wizard fields.
type SubmitInput struct {
	WeeklyBoardMeeting bool `json:"weeklyBoardMeeting"`
	Attendance         int  `json:"attendance"`

	HomeChatsCount          int `json:"homeChatsCount"`
	HighSchoolGirlsContact  int `json:"highSchoolGirlsContact"`
	MiddleSchoolGirlsGroups int `json:"middleSchoolGirlsGroups"`
	UniversityUnitContact   int `json:"universityUnitContact"`

	Visitations int  `json:"visitations"`
	CharityWork bool `json:"charityWork"`

	Notes string `json:"notes"`
}

func (s *service) Submit(user auth.AppUser, in SubmitInput) (Report, error) {
	now := time.Now()
	report := Report{
		ID:               uuid.NewString(),
		UserID:           user.UID,
		NeighborhoodName: user.Name,
		Date:             now.Format("02.01.2006"),
		Timestamp:        now.UnixMilli(),
		Status:           StatusPending,

		WeeklyBoardMeeting: in.WeeklyBoardMeeting,
		Attendance:         in.Attendance,

		HomeChatsCount:          in.HomeChatsCount,
		HighSchoolGirlsContact:  in.HighSchoolGirlsContact,
		MiddleSchoolGirlsGroups: in.MiddleSchoolGirlsGroups,
		UniversityUnitContact:   in.UniversityUnitContact,

		Visitations: in.Visitations,
		CharityWork: in.CharityWork,

		Notes: in.Notes,
	}

	if err := s.repo.Create(&report); err != nil {
		return Report{}, err
	}
	return report, nil
}

// ListForUser gives the district women's president the full list; a
// neighborhood representative sees only her own submissions.
func (s *service) ListForUser(user auth.AppUser) ([]Report, error) {
	switch user.Role {
	case auth.RoleDistrictWomensPresident, auth.RoleAdmin:
		return s.repo.ListAll()
	default:
		return s.repo.ListByUser(user.UID)
	}
}

// Approve moves a pending report to approved, stores the district
// note and tells the submitter through the notification feed. A
// report approves exactly once.
func (s *service) Approve(id, adminNote, approverName string) (Report, error) {
	report, err := s.repo.FindByID(id)
	if err != nil {
		return Report{}, err
	}

	if report.Status == StatusApproved {
		return Report{}, ErrAlreadyApproved
	}

	report.Status = StatusApproved
	report.AdminNote = adminNote
	if err := s.repo.Update(&report); err != nil {
		return Report{}, err
	}

	message := fmt.Sprintf("%s raporunuz onaylandı.", report.Date)
	if adminNote != "" {
		message = fmt.Sprintf("%s Not: %s", message, adminNote)
	}
	if _, err := s.notifySvc.Broadcast("Rapor Onaylandı", message, approverName); err != nil {
		log.Printf("⚠️ Approval notification failed for %s: %v", report.ID, err)
	}

	return report, nil
}
