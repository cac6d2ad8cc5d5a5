package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"littlelemon/entity"
	"littlelemon/repository"
	"littlelemon/utils"
)

const testSecret = "mw-test-secret"

var mwDBSeq atomic.Int64

func newAuthTestEnv(t *testing.T) (*gorm.DB, *repository.UserRepository, *repository.GroupRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:mw_test_%d?mode=memory&cache=shared&_foreign_keys=on", mwDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.GroupMember{}))
	return db, repository.NewUserRepository(db), repository.NewGroupRepository(db)
}

// echoIdentity reports what the middleware derived.
func echoIdentity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c), "role": utils.CurrentRole(c)})
}

func TestRequireAuthDerivesRolePerRequest(t *testing.T) {
	db, users, groups := newAuthTestEnv(t)
	u := &entity.User{Email: "m@example.com", Password: "x", FirstName: "M", LastName: "X"}
	require.NoError(t, db.Create(u).Error)

	r := gin.New()
	r.GET("/whoami", RequireAuth(testSecret, users, groups), echoIdentity)

	token, err := utils.GenerateToken(u.ID, testSecret, time.Hour)
	require.NoError(t, err)

	get := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := get()
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"role":"customer"`)

	// the same token gains manager rights the moment the group does
	require.NoError(t, db.Create(&entity.GroupMember{UserID: u.ID, Role: entity.RoleManager}).Error)
	w = get()
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"role":"manager"`)

	// and loses them the moment it is revoked
	require.NoError(t, db.Where("user_id = ?", u.ID).Delete(&entity.GroupMember{}).Error)
	w = get()
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"role":"customer"`)
}

func TestRequireAuthRejectsBadTokens(t *testing.T) {
	db, users, groups := newAuthTestEnv(t)

	r := gin.New()
	r.GET("/whoami", RequireAuth(testSecret, users, groups), echoIdentity)

	// no header
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// malformed header
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// token naming a user that no longer exists
	u := &entity.User{Email: "gone@example.com", Password: "x", FirstName: "G", LastName: "X"}
	require.NoError(t, db.Create(u).Error)
	token, err := utils.GenerateToken(u.ID, testSecret, time.Hour)
	require.NoError(t, err)
	require.NoError(t, db.Delete(&entity.User{}, u.ID).Error)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWSAuthReadsQueryTokenFirst(t *testing.T) {
	db, users, groups := newAuthTestEnv(t)
	u := &entity.User{Email: "ws@example.com", Password: "x", FirstName: "W", LastName: "S"}
	require.NoError(t, db.Create(u).Error)
	token, err := utils.GenerateToken(u.ID, testSecret, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/feed", WSAuth(testSecret, users, groups), echoIdentity)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feed?token="+token, nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), fmt.Sprintf(`"userId":%d`, u.ID))

	// header works as the fallback
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feed", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feed?token=garbage", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleThreshold(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setRole := func(role entity.Role) gin.HandlerFunc {
		return func(c *gin.Context) { c.Set("role", role) }
	}
	r.GET("/crew", setRole(entity.RoleDeliveryCrew), RequireRole(entity.RoleManager), echoIdentity)
	r.GET("/manager", setRole(entity.RoleManager), RequireRole(entity.RoleManager), echoIdentity)
	r.GET("/admin", setRole(entity.RoleAdmin), RequireRole(entity.RoleManager), echoIdentity)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/crew", nil))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manager", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
