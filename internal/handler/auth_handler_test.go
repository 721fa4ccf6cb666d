package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"holocron/config"
	"holocron/internal/middleware"
	"holocron/internal/repository"
	"holocron/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Load()
	svc := service.NewAuthService(cfg, repository.NewUserRepository(db))
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/login", h.Login)
	r.GET("/protected", middleware.AuthRequired(&cfg.JWT), h.Protected)
	return r
}

func expectUserByEmail(mock sqlmock.Sqlmock, email string, rows *sqlmock.Rows) {
	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE email = \\?").
		WithArgs(email, 1).
		WillReturnRows(rows)
}

func TestLogin_UnknownEmailIs404(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	r := newAuthTestRouter(db)

	expectUserByEmail(mock, "ghost@nowhere.sw", sqlmock.NewRows(userColumns))

	w := doJSON(t, r, http.MethodPost, "/login", map[string]any{"email": "ghost@nowhere.sw", "password": "whatever"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_WrongPasswordIs401(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	r := newAuthTestRouter(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	expectUserByEmail(mock, "luke@rebellion.org", sqlmock.NewRows(userColumns).
		AddRow(7, "Luke Skywalker", 23, "luke@rebellion.org", string(hash), now, now))

	w := doJSON(t, r, http.MethodPost, "/login", map[string]any{"email": "luke@rebellion.org", "password": "wrongpass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_IssuesToken(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	r := newAuthTestRouter(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	expectUserByEmail(mock, "luke@rebellion.org", sqlmock.NewRows(userColumns).
		AddRow(7, "Luke Skywalker", 23, "luke@rebellion.org", string(hash), now, now))

	w := doJSON(t, r, http.MethodPost, "/login", map[string]any{"email": "luke@rebellion.org", "password": "rightpass"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProtected_RequiresToken(t *testing.T) {
	db, _, cleanup := newMockDB(t)
	defer cleanup()
	r := newAuthTestRouter(db)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtected_ReturnsName(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	r := newAuthTestRouter(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	expectUserByEmail(mock, "luke@rebellion.org", sqlmock.NewRows(userColumns).
		AddRow(7, "Luke Skywalker", 23, "luke@rebellion.org", string(hash), now, now))

	w := doJSON(t, r, http.MethodPost, "/login", map[string]any{"email": "luke@rebellion.org", "password": "rightpass"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Luke Skywalker")
}
