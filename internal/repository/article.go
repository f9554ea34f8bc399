package repository

import (
	"knowledge-saas-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleRepository handles database operations for articles
type ArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Create creates a new article
func (r *ArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// GetByID retrieves an article by ID within an organization. A matching
// ID under another organization returns gorm.ErrRecordNotFound.
func (r *ArticleRepository) GetByID(id, organizationID uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, "id = ? AND organization_id = ?", id, organizationID).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// List retrieves articles for an organization with optional free-text
// search, publish-state and tag filters, paginated and newest first.
func (r *ArticleRepository) List(organizationID uuid.UUID, filter ArticleFilter, limit, offset int) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Where("organization_id = ?", organizationID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}
	if filter.Published != nil {
		query = query.Where("is_published = ?", *filter.Published)
	}
	if filter.Tag != "" {
		query = query.Where("tags ILIKE ?", "%"+filter.Tag+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// Update updates an article
func (r *ArticleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// Delete deletes an article within an organization
func (r *ArticleRepository) Delete(id, organizationID uuid.UUID) error {
	result := r.db.Delete(&models.Article{}, "id = ? AND organization_id = ?", id, organizationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
