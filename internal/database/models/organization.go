package models

// Organization represents the tenant boundary; every user and article
// belongs to exactly one organization.
type Organization struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`

	// Relationships
	Users    []User    `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Articles []Article `json:"articles,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
