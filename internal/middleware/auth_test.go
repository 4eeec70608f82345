package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error { return nil }

func (s *stubUserRepo) AdminExists(ctx context.Context) (bool, error) { return false, nil }

func newGuardedRouter(repo repositories.UserRepository) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	reached := false

	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(AdminOnly(repo)...)
	admin.POST("/skills", func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r, &reached
}

func seedUser(repo *stubUserRepo, role models.UserRole) string {
	user := &models.User{Role: role}
	user.ID = primitive.NewObjectID()
	repo.users[user.ID.Hex()] = user
	return user.ID.Hex()
}

func TestAdminGuard_NoToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{}}
	router, reached := newGuardedRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/skills", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAdminGuard_InvalidToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{}}
	router, reached := newGuardedRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/admin/skills", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAdminGuard_ExpiredToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "guard-test-secret"
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = nil })

	repo := &stubUserRepo{users: map[string]*models.User{}}
	adminID := seedUser(repo, models.UserRoleAdmin)
	router, reached := newGuardedRouter(repo)

	claims := auth.Claims{
		UserID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/skills", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	assert.False(t, *reached)
}

func TestAdminGuard_NonAdminForbidden(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{}}
	userID := seedUser(repo, models.UserRoleUser)
	router, reached := newGuardedRouter(repo)

	token, err := auth.GenerateToken(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/skills", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *reached)
}

func TestAdminGuard_AdminPasses(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{}}
	adminID := seedUser(repo, models.UserRoleAdmin)
	router, reached := newGuardedRouter(repo)

	token, err := auth.GenerateToken(adminID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/skills", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, *reached)
}

func TestAdminGuard_DeletedUserRejected(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{}}
	router, reached := newGuardedRouter(repo)

	// token is valid but the account no longer exists
	token, err := auth.GenerateToken(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/skills", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAuthMiddleware_CookieToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := primitive.NewObjectID().Hex()

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})

	token, err := auth.GenerateToken(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID)
}
