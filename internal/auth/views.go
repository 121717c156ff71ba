package auth

// initialViews maps each role to the screen shown right after login.
// Roles without an entry land on the reporting home screen.
var initialViews = map[Role]ViewState{
	RoleDistrictHighSchoolAdmin:   ViewSchoolList,
	RoleDistrictMiddleSchoolAdmin: ViewMiddleSchoolDashboard,
}

// InitialViewForRole returns the post-login screen for a role.
func InitialViewForRole(role Role) ViewState {
	if v, ok := initialViews[role]; ok {
		return v
	}
	return ViewHome
}

// allowedViews lists the screens each role may navigate to. The login
// screen is reachable by everyone and is omitted from the tables.
var allowedViews = map[Role][]ViewState{
	RoleUser: {
		ViewHome, ViewWizard, ViewList, ViewProfile, ViewGoals,
	},
	RoleAdmin: {
		ViewHome, ViewWizard, ViewList, ViewProfile, ViewGoals,
		ViewTaskAssignment, ViewDistrictMap,
	},
	RoleOrganizationPresident: {
		ViewHome, ViewList, ViewProfile, ViewGoals, ViewDistrictMap,
	},
	RoleDistrictHighSchoolAdmin: {
		ViewSchoolList, ViewSchoolDetail, ViewPresidentList, ViewPresidentDetail,
	},
	RoleDistrictMiddleSchoolAdmin: {
		ViewMiddleSchoolDashboard, ViewHome, ViewList,
	},
	RoleSchoolPresident: {
		ViewHome, ViewProfile,
	},
	RoleNeighborhoodWomensRep: {
		ViewHome, ViewWomensReportWizard, ViewList,
	},
	RoleDistrictWomensPresident: {
		ViewHome, ViewList,
	},
}

// AllowedViewsForRole returns the screens a role may open, always
// including the role's initial view.
func AllowedViewsForRole(role Role) []ViewState {
	views, ok := allowedViews[role]
	if !ok {
		return []ViewState{ViewHome}
	}
	out := make([]ViewState, len(views))
	copy(out, views)

	initial := InitialViewForRole(role)
	for _, v := range out {
		if v == initial {
			return out
		}
	}
	return append(out, initial)
}

// CanNavigate reports whether a role may open the given screen.
func CanNavigate(role Role, view ViewState) bool {
	if view == ViewLogin {
		return true
	}
	for _, v := range AllowedViewsForRole(role) {
		if v == view {
			return true
		}
	}
	return false
}
