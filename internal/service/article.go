package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"knowledge-saas-backend/internal/auth"
	"knowledge-saas-backend/internal/database/models"
	apperrors "knowledge-saas-backend/internal/errors"
	"knowledge-saas-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultTitle = "Untitled Article"

// ArticleService handles business logic for articles. Every operation is
// scoped by the caller's organization; a lookup that matches by ID alone
// but mismatches organization behaves identically to "not found".
type ArticleService struct {
	repo      repository.ArticleRepositoryInterface
	ai        AIServiceInterface
	validator *validator.Validate
}

// NewArticleService creates a new article service
func NewArticleService(repo repository.ArticleRepositoryInterface, ai AIServiceInterface, validator *validator.Validate) *ArticleService {
	return &ArticleService{
		repo:      repo,
		ai:        ai,
		validator: validator,
	}
}

// CreateArticleRequest represents the request to create an article
type CreateArticleRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=300"`
	Content     string `json:"content" validate:"required,min=10"`
	IsPublished *bool  `json:"isPublished"`
}

// UpdateArticleRequest represents the request to update an article;
// all fields are optional and keep the per-field constraints of create.
type UpdateArticleRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=300"`
	Content     *string `json:"content" validate:"omitempty,min=10"`
	IsPublished *bool   `json:"isPublished"`
}

// ListArticlesParams narrows and paginates article listings
type ListArticlesParams struct {
	Page      int
	Limit     int
	Search    string
	Published *bool
	Tag       string
}

// ArticleResponse represents the response for article operations
type ArticleResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Tags           string    `json:"tags"`
	Summary        *string   `json:"summary"`
	IsPublished    bool      `json:"isPublished"`
	AuthorID       uuid.UUID `json:"authorId"`
	OrganizationID uuid.UUID `json:"organizationId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ListMeta carries pagination metadata for list responses
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ArticleListResponse represents a paginated list of articles
type ArticleListResponse struct {
	Meta ListMeta          `json:"meta"`
	Data []ArticleResponse `json:"data"`
}

// SummarizeResponse represents the result of the summarize action
type SummarizeResponse struct {
	Summary string `json:"summary"`
	Message string `json:"message"`
	Cached  bool   `json:"-"`
}

// Create creates a new article owned by the caller's organization.
// A blank title is generated from the content via the AI service, and
// tags are always generated; both are best effort and never fail the
// write.
func (s *ArticleService) Create(claims *auth.AuthClaims, req *CreateArticleRequest) (*ArticleResponse, error) {
	if msg, ok := firstArticleValidationMessage(s.validator.Struct(req)); ok {
		return nil, apperrors.NewValidationError("", msg)
	}

	if !claims.Role.CanWriteArticles() {
		return nil, apperrors.ErrRoleNotAllowed
	}

	title := req.Title
	if title == "" {
		generated, err := s.ai.GenerateTitle(req.Content)
		if err != nil {
			logrus.WithError(err).Warn("title generation failed, using default")
			title = defaultTitle
		} else {
			title = generated
		}
	}

	tags, err := s.ai.GenerateTags(req.Content)
	if err != nil {
		logrus.WithError(err).Warn("tag generation failed, leaving tags empty")
		tags = ""
	}

	article := &models.Article{
		OrganizationID: claims.OrganizationID,
		AuthorID:       claims.UserID,
		Title:          title,
		Content:        req.Content,
		Tags:           tags,
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}

	if err := s.repo.Create(article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return toArticleResponse(article), nil
}

// List retrieves the caller's organization articles. Viewers only ever
// see published articles regardless of the requested filter.
func (s *ArticleService) List(claims *auth.AuthClaims, params *ListArticlesParams) (*ArticleListResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	filter := repository.ArticleFilter{
		Search:    params.Search,
		Published: params.Published,
		Tag:       params.Tag,
	}
	if claims.Role == models.RoleViewer {
		published := true
		filter.Published = &published
	}

	offset := (page - 1) * limit
	articles, total, err := s.repo.List(claims.OrganizationID, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	data := make([]ArticleResponse, len(articles))
	for i := range articles {
		data[i] = *toArticleResponse(&articles[i])
	}

	return &ArticleListResponse{
		Meta: ListMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
		Data: data,
	}, nil
}

// GetByID retrieves a single article within the caller's organization.
// Viewers are denied unpublished articles.
func (s *ArticleService) GetByID(claims *auth.AuthClaims, id uuid.UUID) (*ArticleResponse, error) {
	article, err := s.getScoped(claims, id)
	if err != nil {
		return nil, err
	}

	if claims.Role == models.RoleViewer && !article.IsPublished {
		return nil, apperrors.ErrArticleViewForbidden
	}

	return toArticleResponse(article), nil
}

// Update applies a partial update. Admins may update any article in
// their organization; editors only their own.
func (s *ArticleService) Update(claims *auth.AuthClaims, id uuid.UUID, req *UpdateArticleRequest) (*ArticleResponse, error) {
	if msg, ok := firstArticleValidationMessage(s.validator.Struct(req)); ok {
		return nil, apperrors.NewValidationError("", msg)
	}

	if !claims.Role.CanWriteArticles() {
		return nil, apperrors.ErrRoleNotAllowed
	}

	article, err := s.getScoped(claims, id)
	if err != nil {
		return nil, err
	}

	if claims.Role == models.RoleEditor && article.AuthorID != claims.UserID {
		return nil, apperrors.ErrArticleUpdateForbidden
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}

	if err := s.repo.Update(article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	return toArticleResponse(article), nil
}

// Delete removes an article from the caller's organization. The route
// gate already restricts this to admins; the check here keeps the
// service safe when called directly.
func (s *ArticleService) Delete(claims *auth.AuthClaims, id uuid.UUID) error {
	if claims.Role != models.RoleAdmin {
		return apperrors.ErrRoleNotAllowed
	}

	if err := s.repo.Delete(id, claims.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrArticleNotFound
		}
		return fmt.Errorf("failed to delete article: %w", err)
	}

	return nil
}

// Summarize fills the article summary via the AI service. A summary is
// generated at most once; later calls return the stored value without
// touching the AI service.
func (s *ArticleService) Summarize(claims *auth.AuthClaims, id uuid.UUID) (*SummarizeResponse, error) {
	if !claims.Role.CanWriteArticles() {
		return nil, apperrors.ErrRoleNotAllowed
	}

	article, err := s.getScoped(claims, id)
	if err != nil {
		return nil, err
	}

	if article.Summary != nil {
		return &SummarizeResponse{
			Summary: *article.Summary,
			Message: "Summary already exists",
			Cached:  true,
		}, nil
	}

	summary, err := s.ai.SummarizeText(article.Content)
	if err != nil {
		return nil, err
	}

	article.Summary = &summary
	if err := s.repo.Update(article); err != nil {
		return nil, fmt.Errorf("failed to store summary: %w", err)
	}

	return &SummarizeResponse{
		Summary: summary,
		Message: "Summary generated successfully",
	}, nil
}

// getScoped fetches an article by ID within the caller's organization,
// translating a scope miss into the same not-found error as a missing ID.
func (s *ArticleService) getScoped(claims *auth.AuthClaims, id uuid.UUID) (*models.Article, error) {
	article, err := s.repo.GetByID(id, claims.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

func toArticleResponse(article *models.Article) *ArticleResponse {
	return &ArticleResponse{
		ID:             article.ID,
		Title:          article.Title,
		Content:        article.Content,
		Tags:           article.Tags,
		Summary:        article.Summary,
		IsPublished:    article.IsPublished,
		AuthorID:       article.AuthorID,
		OrganizationID: article.OrganizationID,
		CreatedAt:      article.CreatedAt,
		UpdatedAt:      article.UpdatedAt,
	}
}

// firstArticleValidationMessage translates the first validator violation
// on an article request into the message surfaced to the client.
func firstArticleValidationMessage(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid request body", true
	}

	fe := verrs[0]
	switch {
	case fe.Field() == "Content" && fe.Tag() == "required":
		return "Content is required", true
	case fe.Field() == "Content" && fe.Tag() == "min":
		return "Content must be at least 10 characters", true
	case fe.Field() == "Title" && fe.Tag() == "min":
		return "Title must be at least 3 characters", true
	case fe.Field() == "Title" && fe.Tag() == "max":
		return "Title must be at most 300 characters", true
	}
	return fe.Field() + " is invalid", true
}
