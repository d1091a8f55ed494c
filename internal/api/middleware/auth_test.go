package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"btube-go/internal/config"
	"btube-go/internal/model"
	"btube-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	yaml := `
app:
  name: "btube-test"
jwt:
  secret: "middleware-test-secret"
  expire_hours: 1
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	_, err := config.Load(path)
	require.NoError(t, err)
}

func fetcherFor(users map[int64]*model.User) UserFetcher {
	return func(userID int64) (*model.User, error) {
		if u, ok := users[userID]; ok {
			return u, nil
		}
		return nil, errors.New("not found")
	}
}

func TestAuthRequired(t *testing.T) {
	setupAuthTest(t)

	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		userID, ok := GetCurrentUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	// 无 Token
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 非法 Token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 有效 Token
	token, err := utils.GenerateToken(9)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":9`)
}

func TestLoadUserAndAdminRequired(t *testing.T) {
	setupAuthTest(t)

	users := map[int64]*model.User{
		1: {ID: 1, UserName: "alice", UserRole: model.RoleUser},
		2: {ID: 2, UserName: "root", UserRole: model.RoleAdmin},
	}

	r := gin.New()
	r.GET("/admin", AuthRequired(), LoadUser(fetcherFor(users)), AdminRequired(), func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": user.UserName})
	})

	call := func(userID int64) *httptest.ResponseRecorder {
		token, err := utils.GenerateToken(userID)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		return w
	}

	// 普通用户被拒
	assert.Equal(t, http.StatusForbidden, call(1).Code)

	// 管理员放行
	w := call(2)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "root")

	// Token 对应的用户不存在
	assert.Equal(t, http.StatusUnauthorized, call(99).Code)
}

func TestOptionalUser(t *testing.T) {
	setupAuthTest(t)

	users := map[int64]*model.User{
		5: {ID: 5, UserName: "carol", UserRole: model.RoleUser},
	}

	r := gin.New()
	r.GET("/open", OptionalUser(fetcherFor(users)), func(c *gin.Context) {
		if user, ok := GetCurrentUser(c); ok {
			c.JSON(http.StatusOK, gin.H{"viewer": user.UserName})
			return
		}
		c.JSON(http.StatusOK, gin.H{"viewer": "anonymous"})
	})

	// 匿名照常放行
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")

	// 非法 Token 不报错，按匿名处理
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")

	// 有效 Token 加载用户
	token, err := utils.GenerateToken(5)
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "carol")
}
