package auth_test

import (
	"net/http"
	"testing"

	"knowledge-saas-backend/internal/auth"
	"knowledge-saas-backend/internal/database/models"
	"knowledge-saas-backend/internal/mocks"
	"knowledge-saas-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	mockOrgRepo  *mocks.MockOrganizationRepositoryInterface
	service      *auth.AuthService
	handler      *auth.AuthHandler
	httpSuite    *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.service = auth.NewAuthService(suite.mockUserRepo, suite.mockOrgRepo, testSecret)
	suite.handler = auth.NewAuthHandler(suite.service, validator.New())
	suite.httpSuite = testutils.SetupHTTPTest()

	authGroup := suite.httpSuite.Router.Group("/api/auth")
	{
		authGroup.POST("/register", suite.handler.Register)
		authGroup.POST("/login", suite.handler.Login)
		authGroup.POST("/validate", suite.handler.ValidateToken)
	}
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegister tests a successful registration
func (suite *AuthHandlerTestSuite) TestRegister() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("founder@acme.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(org *models.Organization) error {
			org.ID = uuid.New()
			return nil
		}).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			user.ID = uuid.New()
			return nil
		}).
		Times(1)

	requestBody := map[string]interface{}{
		"orgName":  "Acme",
		"name":     "Founder",
		"email":    "founder@acme.com",
		"password": "password123",
	}

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/register", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response auth.TokenResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), "Organization created successfully", response.Message)
	assert.NotEmpty(suite.T(), response.Token)

	// The returned token carries ADMIN claims for the new organization
	claims, err := suite.service.ValidateJWT(response.Token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleAdmin, claims.Role)
}

// TestRegisterEmailTaken tests registration with an already used email
func (suite *AuthHandlerTestSuite) TestRegisterEmailTaken() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("founder@acme.com").
		Return(&models.User{Email: "founder@acme.com"}, nil).
		Times(1)

	requestBody := map[string]interface{}{
		"orgName":  "Acme",
		"name":     "Founder",
		"email":    "founder@acme.com",
		"password": "password123",
	}

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/register", requestBody)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "User already exists")
}

// TestRegisterShortPassword tests registration with a too-short password
func (suite *AuthHandlerTestSuite) TestRegisterShortPassword() {
	requestBody := map[string]interface{}{
		"orgName":  "Acme",
		"name":     "Founder",
		"email":    "founder@acme.com",
		"password": "12345",
	}

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/register", requestBody)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Password must be at least 6 characters")
}

// TestRegisterMissingOrgName tests registration without an organization name
func (suite *AuthHandlerTestSuite) TestRegisterMissingOrgName() {
	requestBody := map[string]interface{}{
		"name":     "Founder",
		"email":    "founder@acme.com",
		"password": "password123",
	}

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/register", requestBody)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "orgName is required")
}

// TestLogin tests a successful login
func (suite *AuthHandlerTestSuite) TestLogin() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(suite.T(), err)

	user := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: uuid.New(),
		Email:          "founder@acme.com",
		Password:       string(hashed),
		Role:           models.RoleAdmin,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail("founder@acme.com").
		Return(user, nil).
		Times(1)

	requestBody := map[string]interface{}{
		"email":    "founder@acme.com",
		"password": "password123",
	}

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/login", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response auth.TokenResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), "Login successful", response.Message)
	assert.NotEmpty(suite.T(), response.Token)
}

// TestLoginInvalidCredentials tests that bad credentials return the
// generic message
func (suite *AuthHandlerTestSuite) TestLoginInvalidCredentials() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("nobody@acme.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	requestBody := map[string]interface{}{
		"email":    "nobody@acme.com",
		"password": "password123",
	}

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/login", requestBody)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid email or password")
}

// TestValidateToken tests validating a freshly issued token
func (suite *AuthHandlerTestSuite) TestValidateToken() {
	user := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: uuid.New(),
		Role:           models.RoleViewer,
	}
	token, err := suite.service.GenerateJWT(user)
	assert.NoError(suite.T(), err)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/validate", map[string]interface{}{"token": token})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Valid bool `json:"valid"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Valid)
}

// TestValidateTokenInvalid tests validating a garbage token
func (suite *AuthHandlerTestSuite) TestValidateTokenInvalid() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/validate", map[string]interface{}{"token": "garbage"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Valid bool `json:"valid"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.False(suite.T(), response.Valid)
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
