package service

import (
	"knowledge-saas-backend/internal/auth"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ArticleServiceInterface defines the interface for the article service
type ArticleServiceInterface interface {
	Create(claims *auth.AuthClaims, req *CreateArticleRequest) (*ArticleResponse, error)
	List(claims *auth.AuthClaims, params *ListArticlesParams) (*ArticleListResponse, error)
	GetByID(claims *auth.AuthClaims, id uuid.UUID) (*ArticleResponse, error)
	Update(claims *auth.AuthClaims, id uuid.UUID, req *UpdateArticleRequest) (*ArticleResponse, error)
	Delete(claims *auth.AuthClaims, id uuid.UUID) error
	Summarize(claims *auth.AuthClaims, id uuid.UUID) (*SummarizeResponse, error)
}

// AIServiceInterface defines the interface for the AI completion client
type AIServiceInterface interface {
	SummarizeText(content string) (string, error)
	GenerateTitle(content string) (string, error)
	GenerateTags(content string) (string, error)
}
