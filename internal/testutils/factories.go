package testutils

import (
	"fmt"
	"time"

	"knowledge-saas-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plaintext behind every factory-built user.
const DefaultPassword = "password123"

// MustHashPassword bcrypt-hashes a plaintext password for test fixtures.
func MustHashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("hash test password: %v", err))
	}
	return string(hash)
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Organization",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The email embeds part of
// the user ID to keep the unique index happy across fixtures.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Jane Doe",
		Email:          fmt.Sprintf("jane.%s@test.com", id.String()[:8]),
		Password:       MustHashPassword(DefaultPassword),
		Role:           models.RoleViewer,
	}
}

// WithOrganization sets the organization ID for the user
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = orgID
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// Admin creates an ADMIN user in the given organization
func (f *UserFactory) Admin(orgID uuid.UUID) *models.User {
	user := f.WithOrganization(orgID)
	user.Role = models.RoleAdmin
	return user
}

// Editor creates an EDITOR user in the given organization
func (f *UserFactory) Editor(orgID uuid.UUID) *models.User {
	user := f.WithOrganization(orgID)
	user.Role = models.RoleEditor
	return user
}

// ArticleFactory provides methods to create test Article data
type ArticleFactory struct{}

// NewArticleFactory creates a new ArticleFactory
func NewArticleFactory() *ArticleFactory {
	return &ArticleFactory{}
}

// Create creates a test Article with default values
func (f *ArticleFactory) Create() *models.Article {
	return &models.Article{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		AuthorID:       uuid.New(),
		Title:          "Test Article",
		Content:        "This is test article content that clears the minimum length.",
		Tags:           "testing, fixtures",
		IsPublished:    false,
	}
}

// WithOrganization sets the organization ID for the article
func (f *ArticleFactory) WithOrganization(orgID uuid.UUID) *models.Article {
	article := f.Create()
	article.OrganizationID = orgID
	return article
}

// WithAuthor sets both the organization and author IDs from an existing user
func (f *ArticleFactory) WithAuthor(user *models.User) *models.Article {
	article := f.Create()
	article.OrganizationID = user.OrganizationID
	article.AuthorID = user.ID
	return article
}

// WithTitle sets a custom title for the article
func (f *ArticleFactory) WithTitle(title string) *models.Article {
	article := f.Create()
	article.Title = title
	return article
}

// Published marks the article as published
func (f *ArticleFactory) Published(user *models.User) *models.Article {
	article := f.WithAuthor(user)
	article.IsPublished = true
	return article
}

// WithSummary sets a stored summary on the article
func (f *ArticleFactory) WithSummary(user *models.User, summary string) *models.Article {
	article := f.WithAuthor(user)
	article.Summary = &summary
	return article
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	Article      *ArticleFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
		Article:      NewArticleFactory(),
	}
}

// CreateTenant creates an organization with its ADMIN user, the shape
// produced by registration.
func (fs *FactorySet) CreateTenant() (*models.Organization, *models.User) {
	org := fs.Organization.Create()
	admin := fs.User.Admin(org.ID)
	return org, admin
}
