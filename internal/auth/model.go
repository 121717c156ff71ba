package auth

// Role is the portal role carried by every account. Routing, report
// visibility and dashboard access all key off this value.
type Role string

const (
	RoleAdmin                    Role = "admin"
	RoleUser                     Role = "user"
	RoleDistrictHighSchoolAdmin  Role = "district_high_school_admin"
	RoleDistrictMiddleSchoolAdmin Role = "district_middle_school_admin"
	RoleSchoolPresident          Role = "school_president"
	RoleOrganizationPresident    Role = "organization_president"
	RoleNeighborhoodWomensRep    Role = "neighborhood_womens_rep"
	RoleDistrictWomensPresident  Role = "district_womens_president"
)

// ViewState names a screen of the portal client. The server owns the
// role-to-view routing tables so every client renders the same flow.
type ViewState string

const (
	ViewLogin                 ViewState = "login"
	ViewHome                  ViewState = "home"
	ViewWizard                ViewState = "wizard"
	ViewList                  ViewState = "list"
	ViewProfile               ViewState = "profile"
	ViewGoals                 ViewState = "goals"
	ViewTaskAssignment        ViewState = "task-assignment"
	ViewSchoolList            ViewState = "school-list"
	ViewSchoolDetail          ViewState = "school-detail"
	ViewPresidentList         ViewState = "president-list"
	ViewPresidentDetail       ViewState = "president-detail"
	ViewMiddleSchoolDashboard ViewState = "middle-school-dashboard"
	ViewWomensReportWizard    ViewState = "womens-report-wizard"
	ViewDistrictMap           ViewState = "district-map"
)

// AppUser is a portal account. Neighborhood accounts carry map
// coordinates; district staff accounts leave them nil.
type AppUser struct {
	UID          string   `gorm:"primaryKey;size:36" json:"uid"`
	Email        string   `gorm:"size:120;uniqueIndex" json:"email"`
	Name         string   `gorm:"size:120" json:"name"`
	Role         Role     `gorm:"size:40" json:"role"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	PasswordHash string   `gorm:"size:80" json:"-"`
}

// TokenPair is returned by Login and Refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
