package kasif

import (
	"time"

	"github.com/google/uuid"
)

// alarmAfter is how long a group may go without meeting before the
// district dashboard flags it.
const alarmAfter = 14 * 24 * time.Hour

type Service interface {
	CreateGroup(input GroupInput) (Group, error)
	ListGroupStatuses() ([]GroupStatus, error)
	ListByNeighborhood(neighborhoodID string) ([]GroupStatus, error)
	ListAlarmed() ([]GroupStatus, error)
	SaveLog(groupID string, input LogInput) (GroupLog, error)
	ListLogs(groupID string) ([]GroupLog, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

type GroupInput struct {
	NeighborhoodID     string `json:"neighborhoodId" binding:"required"`
	NeighborhoodName   string `json:"neighborhoodName" binding:"required"`
	GroupName          string `json:"groupName" binding:"required"`
	GuideName          string `json:"guideName"`
	ActiveStudentCount int    `json:"activeStudentCount"`
}

type LogInput struct {
	Week            int    `json:"week"`
	IsMeetingHeld   bool   `json:"isMeetingHeld"`
	AttendanceCount int    `json:"attendanceCount"`
	ActivityDetails string `json:"activityDetails"`
	Excuse          string `json:"excuse"`
}

func (s *service) CreateGroup(in GroupInput) (Group, error) {
	// A new group counts as having just met, so it gets the full
	// alarm window before the dashboard starts chasing it.
	created := time.Now().UnixMilli()
	group := Group{
		ID:                 uuid.NewString(),
		NeighborhoodID:     in.NeighborhoodID,
		NeighborhoodName:   in.NeighborhoodName,
		GroupName:          in.GroupName,
		GuideName:          in.GuideName,
		ActiveStudentCount: in.ActiveStudentCount,
		LastMeetingDate:    &created,
	}
	if err := s.repo.CreateGroup(&group); err != nil {
		return Group{}, err
	}
	return group, nil
}

// IsRedAlarm flags a group that has not met within the alarm window.
// A group that has never met is always flagged, and hitting the
// boundary exactly counts as stale.
func IsRedAlarm(lastMeetingDate *int64, now time.Time) bool {
	if lastMeetingDate == nil {
		return true
	}
	last := time.UnixMilli(*lastMeetingDate)
	cutoff := now.Add(-alarmAfter)
	return !last.After(cutoff)
}

func (s *service) ListGroupStatuses() ([]GroupStatus, error) {
	groups, err := s.repo.ListGroups()
	if err != nil {
		return nil, err
	}
	return withAlarms(groups), nil
}

func (s *service) ListByNeighborhood(neighborhoodID string) ([]GroupStatus, error) {
	groups, err := s.repo.ListGroupsByNeighborhood(neighborhoodID)
	if err != nil {
		return nil, err
	}
	return withAlarms(groups), nil
}

// ListAlarmed keeps only the groups the dashboard should chase.
func (s *service) ListAlarmed() ([]GroupStatus, error) {
	statuses, err := s.ListGroupStatuses()
	if err != nil {
		return nil, err
	}
	alarmed := make([]GroupStatus, 0, len(statuses))
	for _, st := range statuses {
		if st.RedAlarm {
			alarmed = append(alarmed, st)
		}
	}
	return alarmed, nil
}

func withAlarms(groups []Group) []GroupStatus {
	now := time.Now()
	statuses := make([]GroupStatus, 0, len(groups))
	for _, g := range groups {
		statuses = append(statuses, GroupStatus{
			Group:    g,
			RedAlarm: IsRedAlarm(g.LastMeetingDate, now),
		})
	}
	return statuses
}

// SaveLog records one week for a group. Details and excuse are
// mutually exclusive by the held flag, and a held meeting advances
// the group's last meeting date.
func (s *service) SaveLog(groupID string, in LogInput) (GroupLog, error) {
	group, err := s.repo.FindGroupByID(groupID)
	if err != nil {
		return GroupLog{}, err
	}

	now := time.Now()
	log := GroupLog{
		ID:              uuid.NewString(),
		GroupID:         group.ID,
		NeighborhoodID:  group.NeighborhoodID,
		Week:            in.Week,
		DateFormatted:   now.Format("02.01.2006"),
		Timestamp:       now.UnixMilli(),
		IsMeetingHeld:   in.IsMeetingHeld,
		AttendanceCount: in.AttendanceCount,
	}
	if in.IsMeetingHeld {
		log.ActivityDetails = in.ActivityDetails
	} else {
		log.Excuse = in.Excuse
		log.AttendanceCount = 0
	}

	if err := s.repo.CreateLog(&log); err != nil {
		return GroupLog{}, err
	}

	if log.IsMeetingHeld {
		group.LastMeetingDate = &log.Timestamp
		if err := s.repo.UpdateGroup(&group); err != nil {
			return GroupLog{}, err
		}
	}

	return log, nil
}

func (s *service) ListLogs(groupID string) ([]GroupLog, error) {
	return s.repo.ListLogs(groupID)
}
