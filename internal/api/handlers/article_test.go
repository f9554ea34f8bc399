package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"knowledge-saas-backend/internal/auth"
	"knowledge-saas-backend/internal/database/models"
	apperrors "knowledge-saas-backend/internal/errors"
	"knowledge-saas-backend/internal/mocks"
	"knowledge-saas-backend/internal/service"
	"knowledge-saas-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ArticleHandlerTestSuite defines the test suite for ArticleHandler
type ArticleHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockArticleService *mocks.MockArticleServiceInterface
	handler            *ArticleHandler
	httpSuite          *testutils.HTTPTestSuite
	claims             *auth.AuthClaims
}

// SetupTest sets up the test suite
func (suite *ArticleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockArticleService = mocks.NewMockArticleServiceInterface(suite.ctrl)
	suite.handler = NewArticleHandler(suite.mockArticleService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.claims = &auth.AuthClaims{
		UserID:         uuid.New(),
		OrganizationID: uuid.New(),
		Role:           models.RoleEditor,
	}

	// Routes carry the claims the auth middleware would have set
	articles := suite.httpSuite.Router.Group("/api/articles", func(c *gin.Context) {
		c.Set("user_id", suite.claims.UserID)
		c.Set("organization_id", suite.claims.OrganizationID)
		c.Set("role", suite.claims.Role)
		c.Set("auth_claims", suite.claims)
	})
	{
		articles.POST("", suite.handler.CreateArticle)
		articles.GET("", suite.handler.ListArticles)
		articles.GET("/:id", suite.handler.GetArticle)
		articles.PUT("/:id", suite.handler.UpdateArticle)
		articles.DELETE("/:id", suite.handler.DeleteArticle)
		articles.POST("/:id/summarize", suite.handler.SummarizeArticle)
	}

	// A route with no claims in context
	suite.httpSuite.Router.GET("/bare/articles", suite.handler.ListArticles)
}

// TearDownTest cleans up after each test
func (suite *ArticleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateArticle tests creating an article
func (suite *ArticleHandlerTestSuite) TestCreateArticle() {
	articleID := uuid.New()
	requestBody := map[string]interface{}{
		"title":   "Getting Started",
		"content": "Long enough content for the article body.",
	}

	expected := &service.ArticleResponse{
		ID:             articleID,
		Title:          "Getting Started",
		Content:        "Long enough content for the article body.",
		Tags:           "go, api",
		AuthorID:       suite.claims.UserID,
		OrganizationID: suite.claims.OrganizationID,
	}

	suite.mockArticleService.EXPECT().
		Create(suite.claims, gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/articles", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response struct {
		Success bool                    `json:"success"`
		Data    service.ArticleResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), articleID, response.Data.ID)
	assert.Equal(suite.T(), "Getting Started", response.Data.Title)
}

// TestCreateArticleValidationError tests the 400 mapping of validation errors
func (suite *ArticleHandlerTestSuite) TestCreateArticleValidationError() {
	requestBody := map[string]interface{}{"content": "short"}

	suite.mockArticleService.EXPECT().
		Create(suite.claims, gomock.Any()).
		Return(nil, apperrors.NewValidationError("", "Content must be at least 10 characters")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/articles", requestBody)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Content must be at least 10 characters")
}

// TestMissingClaimsUnauthorized tests the 401 on a route without auth context
func (suite *ArticleHandlerTestSuite) TestMissingClaimsUnauthorized() {
	recorder := suite.httpSuite.MakeRequest("GET", "/bare/articles", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

// TestListArticles tests listing with pagination and filters
func (suite *ArticleHandlerTestSuite) TestListArticles() {
	expected := &service.ArticleListResponse{
		Meta: service.ListMeta{Total: 1, Page: 2, Limit: 5, TotalPages: 1},
		Data: []service.ArticleResponse{{ID: uuid.New(), Title: "Only One"}},
	}

	suite.mockArticleService.EXPECT().
		List(suite.claims, gomock.Any()).
		DoAndReturn(func(claims *auth.AuthClaims, params *service.ListArticlesParams) (*service.ArticleListResponse, error) {
			assert.Equal(suite.T(), 2, params.Page)
			assert.Equal(suite.T(), 5, params.Limit)
			assert.Equal(suite.T(), "guide", params.Search)
			assert.Equal(suite.T(), "go", params.Tag)
			if assert.NotNil(suite.T(), params.Published) {
				assert.True(suite.T(), *params.Published)
			}
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/articles?page=2&limit=5&search=guide&tag=go&published=true", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Success bool                      `json:"success"`
		Meta    service.ListMeta          `json:"meta"`
		Data    []service.ArticleResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), int64(1), response.Meta.Total)
	assert.Len(suite.T(), response.Data, 1)
}

// TestListArticlesBadPublished tests a non-boolean published filter
func (suite *ArticleHandlerTestSuite) TestListArticlesBadPublished() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/articles?published=maybe", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "published must be a boolean")
}

// TestGetArticle tests getting one article
func (suite *ArticleHandlerTestSuite) TestGetArticle() {
	articleID := uuid.New()
	expected := &service.ArticleResponse{ID: articleID, Title: "One"}

	suite.mockArticleService.EXPECT().
		GetByID(suite.claims, articleID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/articles/"+articleID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Data service.ArticleResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), articleID, response.Data.ID)
}

// TestGetArticleInvalidID tests that a malformed ID reads as not found
func (suite *ArticleHandlerTestSuite) TestGetArticleInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/articles/not-a-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Article not found")
}

// TestGetArticleNotFound tests the 404 mapping, which also covers
// cross-tenant IDs
func (suite *ArticleHandlerTestSuite) TestGetArticleNotFound() {
	articleID := uuid.New()

	suite.mockArticleService.EXPECT().
		GetByID(suite.claims, articleID).
		Return(nil, apperrors.ErrArticleNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/articles/"+articleID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Article not found")
}

// TestGetArticleForbidden tests the 403 mapping for viewer draft access
func (suite *ArticleHandlerTestSuite) TestGetArticleForbidden() {
	articleID := uuid.New()

	suite.mockArticleService.EXPECT().
		GetByID(suite.claims, articleID).
		Return(nil, apperrors.ErrArticleViewForbidden).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/articles/"+articleID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Viewers cannot access unpublished articles")
}

// TestUpdateArticle tests updating an article
func (suite *ArticleHandlerTestSuite) TestUpdateArticle() {
	articleID := uuid.New()
	requestBody := map[string]interface{}{"title": "Renamed"}
	expected := &service.ArticleResponse{ID: articleID, Title: "Renamed"}

	suite.mockArticleService.EXPECT().
		Update(suite.claims, articleID, gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/articles/"+articleID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Data service.ArticleResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Renamed", response.Data.Title)
}

// TestUpdateArticleNotAuthor tests the 403 mapping for editor ownership
func (suite *ArticleHandlerTestSuite) TestUpdateArticleNotAuthor() {
	articleID := uuid.New()
	requestBody := map[string]interface{}{"title": "Hijacked"}

	suite.mockArticleService.EXPECT().
		Update(suite.claims, articleID, gomock.Any()).
		Return(nil, apperrors.ErrArticleUpdateForbidden).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/articles/"+articleID.String(), requestBody)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Editors can only update their own articles")
}

// TestDeleteArticle tests deleting an article
func (suite *ArticleHandlerTestSuite) TestDeleteArticle() {
	articleID := uuid.New()

	suite.mockArticleService.EXPECT().
		Delete(suite.claims, articleID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/articles/"+articleID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), "Article deleted successfully", response.Message)
}

// TestDeleteArticleNotFound tests deleting a missing article
func (suite *ArticleHandlerTestSuite) TestDeleteArticleNotFound() {
	articleID := uuid.New()

	suite.mockArticleService.EXPECT().
		Delete(suite.claims, articleID).
		Return(apperrors.ErrArticleNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/articles/"+articleID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Article not found")
}

// TestSummarizeArticle tests the summarize action
func (suite *ArticleHandlerTestSuite) TestSummarizeArticle() {
	articleID := uuid.New()

	suite.mockArticleService.EXPECT().
		Summarize(suite.claims, articleID).
		Return(&service.SummarizeResponse{
			Summary: "A concise summary.",
			Message: "Summary generated successfully",
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/articles/"+articleID.String()+"/summarize", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Success bool   `json:"success"`
		Summary string `json:"summary"`
		Message string `json:"message"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), "A concise summary.", response.Summary)
	assert.Equal(suite.T(), "Summary generated successfully", response.Message)
}

// TestSummarizeArticleAIFailure tests the 500 mapping without leaking
// upstream details
func (suite *ArticleHandlerTestSuite) TestSummarizeArticleAIFailure() {
	articleID := uuid.New()

	suite.mockArticleService.EXPECT().
		Summarize(suite.claims, articleID).
		Return(nil, apperrors.NewAIServiceError("summarization", "unexpected status 503: upstream secret detail")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/articles/"+articleID.String()+"/summarize", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "AI service request failed")
	assert.NotContains(suite.T(), recorder.Body.String(), "upstream secret detail")
}

// TestListArticlesServiceError tests the generic 500 fallback
func (suite *ArticleHandlerTestSuite) TestListArticlesServiceError() {
	suite.mockArticleService.EXPECT().
		List(suite.claims, gomock.Any()).
		Return(nil, fmt.Errorf("connection refused")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/articles", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to list articles")
	assert.NotContains(suite.T(), recorder.Body.String(), "connection refused")
}

// TestArticleHandlerTestSuite runs the test suite
func TestArticleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleHandlerTestSuite))
}
