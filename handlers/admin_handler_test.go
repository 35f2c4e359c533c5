package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAdminService struct {
	users []models.User
	email map[string]string
}

func (s *stubAdminService) GetAllUsers() ([]models.User, error) { return s.users, nil }

func (s *stubAdminService) GetEmailByUsername(username string) (string, error) {
	email, ok := s.email[username]
	if !ok {
		return "", services.ErrUserTidakDitemukan
	}
	return email, nil
}

type stubSuspendService struct {
	updated int64
}

func (s *stubSuspendService) CekAktif(userID uint) (*models.SuspendUser, error) { return nil, nil }
func (s *stubSuspendService) ExpireDue() (int64, error)                         { return s.updated, nil }

func newAdminRouter(admin services.AdminService, suspend services.SuspendService) *gin.Engine {
	handler := NewAdminHandler(admin, suspend)
	router := gin.New()
	router.GET("/admin-get-users", handler.GetUsers)
	router.GET("/expire-suspensions", handler.ExpireSuspensions)
	router.POST("/get-email-by-username", handler.GetEmailByUsername)
	return router
}

func TestGetUsersBentukRespons(t *testing.T) {
	router := newAdminRouter(&stubAdminService{
		users: []models.User{{ID: 1, Username: "siti", Email: "siti@contoh.id"}},
	}, &stubSuspendService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-get-users", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Users []models.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Users, 1)
	assert.Equal(t, "siti", body.Users[0].Username)
}

func TestExpireSuspensionsNolSaatTidakAda(t *testing.T) {
	router := newAdminRouter(&stubAdminService{}, &stubSuspendService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/expire-suspensions", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated": 0}`, w.Body.String())
}

func TestExpireSuspensionsMelaporkanJumlah(t *testing.T) {
	router := newAdminRouter(&stubAdminService{}, &stubSuspendService{updated: 2})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/expire-suspensions", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated": 2}`, w.Body.String())
}

func TestGetEmailByUsername(t *testing.T) {
	router := newAdminRouter(&stubAdminService{
		email: map[string]string{"siti": "siti@contoh.id"},
	}, &stubSuspendService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/get-email-by-username", strings.NewReader(`{"username":"siti"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email": "siti@contoh.id"}`, w.Body.String())
}

func TestGetEmailByUsernameTidakDitemukan(t *testing.T) {
	router := newAdminRouter(&stubAdminService{}, &stubSuspendService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/get-email-by-username", strings.NewReader(`{"username":"hantu"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
