package repository

import (
	"knowledge-saas-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// ArticleFilter narrows article listings. Zero values mean "no filter";
// Published is a tri-state pointer so false can be filtered explicitly.
type ArticleFilter struct {
	Search    string
	Published *bool
	Tag       string
}

// ArticleRepositoryInterface defines the interface for article repository operations.
// Every lookup is scoped by organization ID; an ID that exists under a
// different organization behaves exactly like a missing record.
type ArticleRepositoryInterface interface {
	Create(article *models.Article) error
	GetByID(id, organizationID uuid.UUID) (*models.Article, error)
	List(organizationID uuid.UUID, filter ArticleFilter, limit, offset int) ([]models.Article, int64, error)
	Update(article *models.Article) error
	Delete(id, organizationID uuid.UUID) error
}
