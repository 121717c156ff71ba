package auth

import "testing"

func TestInitialViewForRole(t *testing.T) {
	cases := []struct {
		role Role
		want ViewState
	}{
		{RoleDistrictHighSchoolAdmin, ViewSchoolList},
		{RoleDistrictMiddleSchoolAdmin, ViewMiddleSchoolDashboard},
		{RoleAdmin, ViewHome},
		{RoleUser, ViewHome},
		{RoleOrganizationPresident, ViewHome},
		{RoleSchoolPresident, ViewHome},
		{RoleNeighborhoodWomensRep, ViewHome},
		{RoleDistrictWomensPresident, ViewHome},
	}

	for _, tc := range cases {
		if got := InitialViewForRole(tc.role); got != tc.want {
			t.Errorf("InitialViewForRole(%s) = %s, want %s", tc.role, got, tc.want)
		}
	}
}

func TestAllowedViewsIncludeInitial(t *testing.T) {
	roles := []Role{
		RoleAdmin, RoleUser, RoleDistrictHighSchoolAdmin,
		RoleDistrictMiddleSchoolAdmin, RoleSchoolPresident,
		RoleOrganizationPresident, RoleNeighborhoodWomensRep,
		RoleDistrictWomensPresident,
	}

	for _, role := range roles {
		initial := InitialViewForRole(role)
		if !CanNavigate(role, initial) {
			t.Errorf("role %s cannot navigate to its initial view %s", role, initial)
		}
	}
}

func TestCanNavigate(t *testing.T) {
	if !CanNavigate(RoleUser, ViewWizard) {
		t.Error("user should reach the report wizard")
	}
	if CanNavigate(RoleUser, ViewDistrictMap) {
		t.Error("user should not reach the district map")
	}
	if !CanNavigate(RoleAdmin, ViewTaskAssignment) {
		t.Error("admin should reach task assignment")
	}
	if CanNavigate(RoleDistrictHighSchoolAdmin, ViewWizard) {
		t.Error("high school admin should not reach the report wizard")
	}
	if !CanNavigate(RoleNeighborhoodWomensRep, ViewWomensReportWizard) {
		t.Error("womens rep should reach the womens report wizard")
	}
	// Login is reachable for everyone.
	if !CanNavigate(RoleSchoolPresident, ViewLogin) {
		t.Error("every role can navigate back to login")
	}
}
