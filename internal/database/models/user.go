package models

import (
	"github.com/google/uuid"
)

// Role is the closed set of permissions a user can hold within an
// organization. Authorization checks switch exhaustively on this type.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleViewer Role = "VIEWER"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// CanWriteArticles reports whether the role may create or update articles.
func (r Role) CanWriteArticles() bool {
	switch r {
	case RoleAdmin, RoleEditor:
		return true
	case RoleViewer:
		return false
	}
	return false
}

// User represents an authenticated member of an organization.
// The first user of an organization is created as ADMIN at registration;
// there is no other user-creation path and roles are immutable.
type User struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	Name           string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password       string    `json:"-" gorm:"not null;size:255"`
	Role           Role      `json:"role" gorm:"type:varchar(20);not null;default:'VIEWER'"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
