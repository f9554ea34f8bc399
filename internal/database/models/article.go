package models

import (
	"github.com/google/uuid"
)

// Article is the tenant-scoped unit of content. Summary stays nil until
// the summarize action fills it; a second summarize returns the stored
// value instead of calling the AI service again.
type Article struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	AuthorID       uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index"`
	Title          string    `json:"title" gorm:"not null;size:300"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	Tags           string    `json:"tags" gorm:"size:500"`
	Summary        *string   `json:"summary" gorm:"type:text"`
	IsPublished    bool      `json:"is_published" gorm:"not null;default:false"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Author       *User         `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for Article
func (Article) TableName() string {
	return "articles"
}
