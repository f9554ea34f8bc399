package handlers

import (
	"net/http"
	"strconv"

	"knowledge-saas-backend/internal/auth"
	apperrors "knowledge-saas-backend/internal/errors"
	"knowledge-saas-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ArticleHandler handles HTTP requests for articles
type ArticleHandler struct {
	service service.ArticleServiceInterface
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(service service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// CreateArticle handles POST /api/articles
// @Summary Create an article
// @Description Create an article in the caller's organization; a blank title and the tags are AI-generated
// @Tags articles
// @Accept json
// @Produce json
// @Param article body service.CreateArticleRequest true "Article data"
// @Success 201 {object} map[string]interface{} "Created article"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Security BearerAuth
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	var req service.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	article, err := h.service.Create(claims, &req)
	if err != nil {
		respondArticleError(c, err, "Failed to create article")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": article})
}

// ListArticles handles GET /api/articles
// @Summary List articles
// @Description List the organization's articles with pagination, search and filters; viewers only see published articles
// @Tags articles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Free-text search over title and content"
// @Param published query bool false "Publish-state filter"
// @Param tag query string false "Tag filter"
// @Success 200 {object} map[string]interface{} "Paginated articles"
// @Security BearerAuth
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	params := &service.ListArticlesParams{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Tag:    c.Query("tag"),
	}
	if publishedStr := c.Query("published"); publishedStr != "" {
		published, err := strconv.ParseBool(publishedStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "published must be a boolean"})
			return
		}
		params.Published = &published
	}

	list, err := h.service.List(claims, params)
	if err != nil {
		respondArticleError(c, err, "Failed to list articles")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "meta": list.Meta, "data": list.Data})
}

// GetArticle handles GET /api/articles/:id
// @Summary Get an article
// @Description Get one article by ID; cross-tenant IDs behave as not found
// @Tags articles
// @Produce json
// @Param id path string true "Article ID (UUID)"
// @Success 200 {object} map[string]interface{} "Article"
// @Failure 403 {object} map[string]interface{} "Viewer requested an unpublished article"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Security BearerAuth
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Article not found"})
		return
	}

	article, err := h.service.GetByID(claims, id)
	if err != nil {
		respondArticleError(c, err, "Failed to get article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": article})
}

// UpdateArticle handles PUT /api/articles/:id
// @Summary Update an article
// @Description Partially update an article; editors may only update their own
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID (UUID)"
// @Param article body service.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated article"
// @Failure 403 {object} map[string]interface{} "Not the author"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Security BearerAuth
// @Router /articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Article not found"})
		return
	}

	var req service.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	article, err := h.service.Update(claims, id, &req)
	if err != nil {
		respondArticleError(c, err, "Failed to update article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": article})
}

// DeleteArticle handles DELETE /api/articles/:id
// @Summary Delete an article
// @Description Delete an article; admins only
// @Tags articles
// @Produce json
// @Param id path string true "Article ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Security BearerAuth
// @Router /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Article not found"})
		return
	}

	if err := h.service.Delete(claims, id); err != nil {
		respondArticleError(c, err, "Failed to delete article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Article deleted successfully"})
}

// SummarizeArticle handles POST /api/articles/:id/summarize
// @Summary Summarize an article
// @Description Generate (or return the cached) AI summary for an article
// @Tags articles
// @Produce json
// @Param id path string true "Article ID (UUID)"
// @Success 200 {object} map[string]interface{} "Summary"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Failure 500 {object} map[string]interface{} "AI service failure"
// @Security BearerAuth
// @Router /articles/{id}/summarize [post]
func (h *ArticleHandler) SummarizeArticle(c *gin.Context) {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Article not found"})
		return
	}

	result, err := h.service.Summarize(claims, id)
	if err != nil {
		respondArticleError(c, err, "Failed to summarize article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "summary": result.Summary, "message": result.Message})
}

// respondArticleError maps service errors onto HTTP statuses. Internal
// details are logged, not surfaced.
func respondArticleError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Article not found"})
	case apperrors.IsAIService(err):
		logrus.WithError(err).Error("AI service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "AI service request failed"})
	default:
		logrus.WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": fallback})
	}
}
