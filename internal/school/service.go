package school

import (
	"time"

	"github.com/google/uuid"
)

type Service interface {
	ListSchools() ([]School, error)
	GetSchool(id string) (School, error)
	CreateSchool(input SchoolInput) (School, error)
	UpdateSchool(id string, input SchoolInput) (School, error)
	AddSchoolLog(schoolID string, input SchoolLogInput) (SchoolLog, error)
	ListSchoolLogs(schoolID string) ([]SchoolLog, error)

	ListPresidents() ([]PresidentSummary, error)
	GetPresident(id string) (PresidentDetail, error)
	CreatePresident(input PresidentInput) (President, error)
	AddPresidentLog(presidentID string, input PresidentLogInput) (PresidentWeeklyLog, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

type SchoolInput struct {
	SchoolName      string   `json:"schoolName" binding:"required"`
	Neighborhood    string   `json:"neighborhood" binding:"required"`
	PresidentName   string   `json:"presidentName"`
	PresidentPhone  string   `json:"presidentPhone"`
	TeacherContact  string   `json:"teacherContact"`
	StudentCapacity int      `json:"studentCapacity"`
	Lat             *float64 `json:"latitude"`
	Lng             *float64 `json:"longitude"`
}

type SchoolLogInput struct {
	Week              int    `json:"week"`
	IsPresidentActive bool   `json:"isPresidentActive"`
	ChatHeld          bool   `json:"chatHeld"`
	AttendeesCount    int    `json:"attendeesCount"`
	Notes             string `json:"notes"`
}

type PresidentInput struct {
	FullName      string `json:"fullName" binding:"required"`
	SchoolID      string `json:"schoolId" binding:"required"`
	PhoneNumber   string `json:"phoneNumber"`
	Grade         int    `json:"grade"`
	SuccessorName string `json:"successorName"`
	StartDate     string `json:"startDate"`
	PhotoURL      string `json:"photoUrl"`
}

type PresidentLogInput struct {
	Week                    int    `json:"week"`
	AttendedMeeting         bool   `json:"attendedMeeting"`
	PerformedSchoolActivity bool   `json:"performedSchoolActivity"`
	RecruitedNewMember      int    `json:"recruitedNewMember"`
	Notes                   string `json:"notes"`
}

// PresidentSummary is a list row with the computed badge.
type PresidentSummary struct {
	President
	ActiveBadge bool `json:"activeBadge"`
}

// PresidentDetail carries the full log history and attendance rate.
type PresidentDetail struct {
	President
	Logs           []PresidentWeeklyLog `json:"logs"`
	AttendanceRate int                  `json:"attendanceRate"`
	ActiveBadge    bool                 `json:"activeBadge"`
}

func (s *service) ListSchools() ([]School, error) {
	return s.repo.ListSchools()
}

func (s *service) GetSchool(id string) (School, error) {
	return s.repo.FindSchoolByID(id)
}

func (s *service) CreateSchool(in SchoolInput) (School, error) {
	school := School{
		ID:              uuid.NewString(),
		SchoolName:      in.SchoolName,
		Neighborhood:    in.Neighborhood,
		PresidentName:   in.PresidentName,
		PresidentPhone:  in.PresidentPhone,
		TeacherContact:  in.TeacherContact,
		StudentCapacity: in.StudentCapacity,
		Lat:             in.Lat,
		Lng:             in.Lng,
	}
	if err := s.repo.CreateSchool(&school); err != nil {
		return School{}, err
	}
	return school, nil
}

func (s *service) UpdateSchool(id string, in SchoolInput) (School, error) {
	school, err := s.repo.FindSchoolByID(id)
	if err != nil {
		return School{}, err
	}
	school.SchoolName = in.SchoolName
	school.Neighborhood = in.Neighborhood
	school.PresidentName = in.PresidentName
	school.PresidentPhone = in.PresidentPhone
	school.TeacherContact = in.TeacherContact
	school.StudentCapacity = in.StudentCapacity
	school.Lat = in.Lat
	school.Lng = in.Lng
	if err := s.repo.UpdateSchool(&school); err != nil {
		return School{}, err
	}
	return school, nil
}

func (s *service) AddSchoolLog(schoolID string, in SchoolLogInput) (SchoolLog, error) {
	if _, err := s.repo.FindSchoolByID(schoolID); err != nil {
		return SchoolLog{}, err
	}

	now := time.Now()
	log := SchoolLog{
		ID:                uuid.NewString(),
		SchoolID:          schoolID,
		Week:              in.Week,
		DateFormatted:     now.Format("02.01.2006"),
		IsPresidentActive: in.IsPresidentActive,
		ChatHeld:          in.ChatHeld,
		AttendeesCount:    in.AttendeesCount,
		Notes:             in.Notes,
		Timestamp:         now.UnixMilli(),
	}
	if err := s.repo.CreateSchoolLog(&log); err != nil {
		return SchoolLog{}, err
	}
	return log, nil
}

func (s *service) ListSchoolLogs(schoolID string) ([]SchoolLog, error) {
	return s.repo.ListSchoolLogs(schoolID)
}

// ListPresidents computes the performance badge for every president
// from their recent logs.
func (s *service) ListPresidents() ([]PresidentSummary, error) {
	presidents, err := s.repo.ListPresidents()
	if err != nil {
		return nil, err
	}

	summaries := make([]PresidentSummary, 0, len(presidents))
	for _, p := range presidents {
		logs, err := s.repo.ListPresidentLogs(p.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, PresidentSummary{
			President:   p,
			ActiveBadge: ActiveBadge(logs),
		})
	}
	return summaries, nil
}

func (s *service) GetPresident(id string) (PresidentDetail, error) {
	president, err := s.repo.FindPresidentByID(id)
	if err != nil {
		return PresidentDetail{}, err
	}

	logs, err := s.repo.ListPresidentLogs(id)
	if err != nil {
		return PresidentDetail{}, err
	}

	return PresidentDetail{
		President:      president,
		Logs:           logs,
		AttendanceRate: AttendanceRate(logs),
		ActiveBadge:    ActiveBadge(logs),
	}, nil
}

func (s *service) CreatePresident(in PresidentInput) (President, error) {
	school, err := s.repo.FindSchoolByID(in.SchoolID)
	if err != nil {
		return President{}, err
	}

	president := President{
		ID:            uuid.NewString(),
		FullName:      in.FullName,
		SchoolID:      school.ID,
		SchoolName:    school.SchoolName,
		PhoneNumber:   in.PhoneNumber,
		Grade:         in.Grade,
		SuccessorName: in.SuccessorName,
		IsActive:      true,
		StartDate:     in.StartDate,
		PhotoURL:      in.PhotoURL,
	}
	if err := s.repo.CreatePresident(&president); err != nil {
		return President{}, err
	}
	return president, nil
}

func (s *service) AddPresidentLog(presidentID string, in PresidentLogInput) (PresidentWeeklyLog, error) {
	if _, err := s.repo.FindPresidentByID(presidentID); err != nil {
		return PresidentWeeklyLog{}, err
	}

	now := time.Now()
	log := PresidentWeeklyLog{
		ID:                      uuid.NewString(),
		PresidentID:             presidentID,
		Week:                    in.Week,
		DateFormatted:           now.Format("02.01.2006"),
		AttendedMeeting:         in.AttendedMeeting,
		PerformedSchoolActivity: in.PerformedSchoolActivity,
		RecruitedNewMember:      in.RecruitedNewMember,
		Notes:                   in.Notes,
		Timestamp:               now.UnixMilli(),
	}
	if err := s.repo.CreatePresidentLog(&log); err != nil {
		return PresidentWeeklyLog{}, err
	}
	return log, nil
}
