package main

import (
	"fmt"
	"log"
	"time"

	"knowledge-saas-backend/internal/config"
	"knowledge-saas-backend/internal/database"
	"knowledge-saas-backend/internal/database/models"

	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name string `yaml:"name"`
}

type UserData struct {
	OrganizationName string `yaml:"organization_name"`
	Name             string `yaml:"name"`
	Email            string `yaml:"email"`
	Password         string `yaml:"password"`
	Role             string `yaml:"role"`
}

type ArticleData struct {
	OrganizationName string `yaml:"organization_name"`
	AuthorEmail      string `yaml:"author_email"`
	Title            string `yaml:"title"`
	Content          string `yaml:"content"`
	Tags             string `yaml:"tags,omitempty"`
	IsPublished      bool   `yaml:"is_published"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ArticlesFile struct {
	Articles []ArticleData `yaml:"articles"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // suppress SQL and "record not found" noise while seeding
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var orgsFile OrganizationsFile
	if err := readYAML(filepath.Join(dataDir, "organizations.yaml"), &orgsFile); err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	var usersFile UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var articlesFile ArticlesFile
	if err := readYAML(filepath.Join(dataDir, "articles.yaml"), &articlesFile); err != nil {
		return fmt.Errorf("failed to load articles: %w", err)
	}

	// Organizations first, everything else references them by name
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range orgsFile.Organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("Organizations: %d created, %d total", orgCreated, len(orgsFile.Organizations))

	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range usersFile.Users {
		org, ok := orgMap[userData.OrganizationName]
		if !ok {
			return fmt.Errorf("user %s references unknown organization %s", userData.Email, userData.OrganizationName)
		}
		user, created, err := createUser(db, org, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(usersFile.Users))

	articleCreated := 0
	for _, articleData := range articlesFile.Articles {
		org, ok := orgMap[articleData.OrganizationName]
		if !ok {
			return fmt.Errorf("article %q references unknown organization %s", articleData.Title, articleData.OrganizationName)
		}
		author, ok := userMap[articleData.AuthorEmail]
		if !ok {
			return fmt.Errorf("article %q references unknown author %s", articleData.Title, articleData.AuthorEmail)
		}
		if author.OrganizationID != org.ID {
			return fmt.Errorf("article %q author %s belongs to a different organization", articleData.Title, articleData.AuthorEmail)
		}
		created, err := createArticle(db, org, author, articleData)
		if err != nil {
			return fmt.Errorf("failed to create article %q: %w", articleData.Title, err)
		}
		if created {
			articleCreated++
		}
	}
	log.Printf("Articles: %d created, %d total", articleCreated, len(articlesFile.Articles))

	return nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

// createOrganization creates an organization unless one with the same name exists.
func createOrganization(db *gorm.DB, data OrganizationData) (*models.Organization, bool, error) {
	var existing models.Organization
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	org := &models.Organization{Name: data.Name}
	if err := db.Create(org).Error; err != nil {
		return nil, false, err
	}
	return org, true, nil
}

// createUser creates a user unless the email is already taken. Passwords in
// the YAML are plaintext and hashed here, the same as registration does.
func createUser(db *gorm.DB, org *models.Organization, data UserData) (*models.User, bool, error) {
	var existing models.User
	err := db.First(&existing, "email = ?", data.Email).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	role := models.Role(data.Role)
	if !role.Valid() {
		return nil, false, fmt.Errorf("invalid role %q", data.Role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	user := &models.User{
		OrganizationID: org.ID,
		Name:           data.Name,
		Email:          data.Email,
		Password:       string(hashed),
		Role:           role,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// createArticle creates an article unless the organization already has one
// with the same title.
func createArticle(db *gorm.DB, org *models.Organization, author *models.User, data ArticleData) (bool, error) {
	var existing models.Article
	err := db.First(&existing, "title = ? AND organization_id = ?", data.Title, org.ID).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	article := &models.Article{
		OrganizationID: org.ID,
		AuthorID:       author.ID,
		Title:          data.Title,
		Content:        data.Content,
		Tags:           data.Tags,
		IsPublished:    data.IsPublished,
	}
	if err := db.Create(article).Error; err != nil {
		return false, err
	}
	return true, nil
}
