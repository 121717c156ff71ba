package profile

// NeighborhoodProfile is the standing structure of one neighborhood:
// commission sizes, total membership and map placement. One row per
// neighborhood account.
type NeighborhoodProfile struct {
	UserID string `gorm:"primaryKey;size:36" json:"userId"`

	// Ana Kademe
	ManagementCount int `json:"managementCount"`

	// Komisyonlar
	MiddleSchoolCount int `json:"middleSchoolCount"`
	HighSchoolCount   int `json:"highSchoolCount"`

	// Gruplar
	KasifGroupCount   int `json:"kasifGroupCount"`
	KaravanGroupCount int `json:"karavanGroupCount"`

	TotalMembersCount int `json:"totalMembersCount"`

	Lat          *float64 `json:"latitude,omitempty"`
	Lng          *float64 `json:"longitude,omitempty"`
	SuccessScore int      `json:"successScore"`

	UpdatedAt int64 `json:"updatedAt"`
}
