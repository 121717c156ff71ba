package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/sultangaziagd/agdsgazi/internal/auth"
	"github.com/sultangaziagd/agdsgazi/utils"
)

var ErrAlreadyApproved = errors.New("report already approved")

type Service interface {
	Submit(user auth.AppUser, input SubmitInput) (WeeklyReport, error)
	ListForUser(user auth.AppUser) ([]WeeklyReport, error)
	GetByID(id string) (WeeklyReport, error)
	Approve(id string) (WeeklyReport, error)
	Summary(window Window) (DistrictSummary, error)
	MapMarkers(window Window) ([]MapMarker, error)
}

type service struct {
	repo    Repository
	authSvc auth.Service
}

func NewService(r Repository, authSvc auth.Service) Service {
	return &service{repo: r, authSvc: authSvc}
}

// SubmitInput carries every wizard field of a weekly report.
type SubmitInput struct {
	CompletedTasks map[string]TaskSnapshot `json:"completedTasks"`

	IsWomenMeetingHeld     bool `json:"isWomenMeetingHeld"`
	WomenMeetingAttendance int  `json:"womenMeetingAttendance"`
	WomenTeaTalkCount      int  `json:"womenTeaTalkCount"`
	YoungWomenWork         int  `json:"youngWomenWork"`

	IsManagementMeetingHeld   bool   `json:"isManagementMeetingHeld"`
	MeetingPhotoURL           string `json:"meetingPhotoUrl"`
	IsSupervisorAttended      bool   `json:"isSupervisorAttended"`
	ManagementTotalCount      int    `json:"managementTotalCount"`
	ManagementAttendanceCount int    `json:"managementAttendanceCount"`

	MiddleSchoolGroupCount   int `json:"middleSchoolGroupCount"`
	MiddleSchoolStudentCount int `json:"middleSchoolStudentCount"`

	HighSchoolTotalCount          int `json:"highSchoolTotalCount"`
	HighSchoolPresidentCount      int `json:"highSchoolPresidentCount"`
	HighSchoolStaffCount          int `json:"highSchoolStaffCount"`
	HighSchoolMeetingAttendance   int `json:"highSchoolMeetingAttendance"`
	HighSchoolReadingGroupCount   int `json:"highSchoolReadingGroupCount"`
	HighSchoolReadingStudentCount int `json:"highSchoolReadingStudentCount"`
	HighSchoolChatAttendance      int `json:"highSchoolChatAttendance"`

	GeneralChatAttendance int `json:"generalChatAttendance"`
	WomenChatAttendance   int `json:"womenChatAttendance"`

	OtherActivities string `json:"otherActivities"`
}

// TaskSnapshot mirrors the task completion state copied into the
// report at submission time.
type TaskSnapshot struct {
	Completed bool   `json:"completed"`
	Note      string `json:"note"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

func (s *service) Submit(user auth.AppUser, in SubmitInput) (WeeklyReport, error) {
	now := time.Now()

	tasksJSON, err := json.Marshal(in.CompletedTasks)
	if err != nil {
		return WeeklyReport{}, err
	}

	report := WeeklyReport{
		ID:               uuid.NewString(),
		UserID:           user.UID,
		NeighborhoodName: user.Name,
		Date:             now.Format("02.01.2006"),
		Timestamp:        now.UnixMilli(),
		Status:           StatusPending,
		CompletedTasks:   datatypes.JSON(tasksJSON),

		IsWomenMeetingHeld:     in.IsWomenMeetingHeld,
		WomenMeetingAttendance: in.WomenMeetingAttendance,
		WomenTeaTalkCount:      in.WomenTeaTalkCount,
		YoungWomenWork:         in.YoungWomenWork,

		IsManagementMeetingHeld:   in.IsManagementMeetingHeld,
		MeetingPhotoURL:           in.MeetingPhotoURL,
		IsSupervisorAttended:      in.IsSupervisorAttended,
		ManagementTotalCount:      in.ManagementTotalCount,
		ManagementAttendanceCount: in.ManagementAttendanceCount,

		MiddleSchoolGroupCount:   in.MiddleSchoolGroupCount,
		MiddleSchoolStudentCount: in.MiddleSchoolStudentCount,

		HighSchoolTotalCount:          in.HighSchoolTotalCount,
		HighSchoolPresidentCount:      in.HighSchoolPresidentCount,
		HighSchoolStaffCount:          in.HighSchoolStaffCount,
		HighSchoolMeetingAttendance:   in.HighSchoolMeetingAttendance,
		HighSchoolReadingGroupCount:   in.HighSchoolReadingGroupCount,
		HighSchoolReadingStudentCount: in.HighSchoolReadingStudentCount,
		HighSchoolChatAttendance:      in.HighSchoolChatAttendance,

		GeneralChatAttendance: in.GeneralChatAttendance,
		WomenChatAttendance:   in.WomenChatAttendance,

		OtherActivities: in.OtherActivities,
	}

	if err := s.repo.Create(&report); err != nil {
		return WeeklyReport{}, err
	}

	s.invalidateSummaryCache()
	return report, nil
}

// ListForUser scopes the report list by role. District staff who
// review submissions see everything; a neighborhood account sees only
// its own history.
func (s *service) ListForUser(user auth.AppUser) ([]WeeklyReport, error) {
	switch user.Role {
	case auth.RoleAdmin, auth.RoleOrganizationPresident, auth.RoleDistrictMiddleSchoolAdmin:
		return s.repo.ListAll()
	default:
		return s.repo.ListByUser(user.UID)
	}
}

func (s *service) GetByID(id string) (WeeklyReport, error) {
	return s.repo.FindByID(id)
}

// Approve moves a pending report to approved. Approving twice is an
// error so the audit trail records exactly one approval.
func (s *service) Approve(id string) (WeeklyReport, error) {
	report, err := s.repo.FindByID(id)
	if err != nil {
		return WeeklyReport{}, err
	}

	if report.Status == StatusApproved {
		return WeeklyReport{}, ErrAlreadyApproved
	}

	report.Status = StatusApproved
	if err := s.repo.Update(&report); err != nil {
		return WeeklyReport{}, err
	}

	s.invalidateSummaryCache()
	return report, nil
}

func summaryCacheKey(window Window) string {
	return fmt.Sprintf("district_summary:%s", window)
}

func (s *service) invalidateSummaryCache() {
	for _, w := range []Window{WindowWeek, WindowMonth, WindowAll} {
		if err := utils.DeleteToken(summaryCacheKey(w)); err != nil {
			log.Printf("⚠️ Failed to drop summary cache %s: %v", w, err)
		}
	}
}

// Summary aggregates the district dashboard, serving from cache when
// a fresh copy exists.
func (s *service) Summary(window Window) (DistrictSummary, error) {
	if raw, err := utils.GetCachedJSON(summaryCacheKey(window)); err == nil {
		var cached DistrictSummary
		if json.Unmarshal(raw, &cached) == nil {
			return cached, nil
		}
	}

	all, err := s.repo.ListAll()
	if err != nil {
		return DistrictSummary{}, err
	}

	summary := Summarize(all, window, time.Now().UnixMilli())

	if raw, err := json.Marshal(summary); err == nil {
		if err := utils.CacheJSON(summaryCacheKey(window), raw, 2*time.Minute); err != nil {
			log.Printf("⚠️ Failed to cache district summary: %v", err)
		}
	}
	return summary, nil
}

// MapMarkers scores every neighborhood for the district map. A
// neighborhood without a report in the window gets a zero score so it
// still shows up, colored red.
func (s *service) MapMarkers(window Window) ([]MapMarker, error) {
	users, err := s.authSvc.ListNeighborhoodUsers()
	if err != nil {
		return nil, err
	}

	all, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	// Latest report per account, not per neighborhood name, so two
	// accounts sharing a display name keep separate markers.
	filtered := FilterByWindow(all, window, time.Now().UnixMilli())
	latest := make(map[string]WeeklyReport, len(filtered))
	for _, r := range filtered {
		if prev, ok := latest[r.UserID]; !ok || r.Timestamp > prev.Timestamp {
			latest[r.UserID] = r
		}
	}

	markers := make([]MapMarker, 0, len(users))
	for _, u := range users {
		if u.Lat == nil || u.Lng == nil {
			continue
		}
		m := MapMarker{
			UserID:           u.UID,
			NeighborhoodName: u.Name,
			Lat:              *u.Lat,
			Lng:              *u.Lng,
		}
		if r, ok := latest[u.UID]; ok {
			m.Score = Score(r)
			m.HasReport = true
		}
		m.Tier = TierFor(m.Score)
		markers = append(markers, m)
	}
	return markers, nil
}
