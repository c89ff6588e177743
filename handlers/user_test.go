package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doctorsportal/config"
	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserService struct {
	admins   map[string]bool
	existing map[string]bool
	created  []models.User
}

func (f *fakeUserService) CreateUser(u models.User) (*user.CreateResult, error) {
	if f.existing[u.Email] {
		return &user.CreateResult{Exists: true}, nil
	}
	f.created = append(f.created, u)
	return &user.CreateResult{InsertedID: "65a000000000000000000003"}, nil
}

func (f *fakeUserService) IssueToken(email string) (string, error) {
	if !f.existing[email] {
		return "", user.ErrUnknownUser
	}
	return utils.GenerateToken(email, 24*time.Hour)
}

func (f *fakeUserService) GetAllUsers() ([]models.User, error) { return nil, nil }

func (f *fakeUserService) IsAdmin(email string) (bool, error) { return f.admins[email], nil }

func (f *fakeUserService) PromoteToAdmin(id string) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeUserService) DeleteUser(id string) (int64, error) { return 1, nil }

func newUserRouter(svc user.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(svc)
	r.POST("/users", h.CreateUser)
	r.GET("/jwt", h.IssueJWT)
	r.GET("/users/admin/:email", h.CheckAdmin)
	return r
}

func TestIssueJWTForRegisteredUser(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := newUserRouter(&fakeUserService{existing: map[string]bool{"pat@example.com": true}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jwt?email=pat@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestIssueJWTUnknownUserGets403WithoutToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := newUserRouter(&fakeUserService{existing: map[string]bool{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jwt?email=ghost@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	// The response carries no usable token, only the refusal string.
	assert.Contains(t, w.Body.String(), "Unauthorized access")
	_, err := utils.ExtractEmailFromToken("Unauthorized access")
	assert.Error(t, err)
}

func TestCreateUserNestedBody(t *testing.T) {
	svc := &fakeUserService{existing: map[string]bool{}}
	r := newUserRouter(svc)

	payload := `{"user":{"name":"Pat","email":"pat@example.com"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	require.Len(t, svc.created, 1)
	assert.Equal(t, "pat@example.com", svc.created[0].Email)
}

func TestCreateUserExistingEmail(t *testing.T) {
	r := newUserRouter(&fakeUserService{existing: map[string]bool{"pat@example.com": true}})

	payload := `{"user":{"email":"pat@example.com"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
}

func TestCheckAdminBareShape(t *testing.T) {
	r := newUserRouter(&fakeUserService{admins: map[string]bool{"admin@example.com": true}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/admin/admin@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isAdmin":true}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/users/admin/pat@example.com", nil)
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"isAdmin":false}`, w.Body.String())
}
