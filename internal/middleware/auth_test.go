package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"daily-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	tokens map[string]service.Actor
	err    error
}

func (s stubAuth) Authenticate(_ context.Context, token string) (service.Actor, error) {
	if s.err != nil {
		return service.Actor{}, s.err
	}
	actor, ok := s.tokens[token]
	if !ok {
		return service.Actor{}, service.NewUnauthorizedError("登录已失效，请重新登录")
	}
	return actor, nil
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/bill/", func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		c.JSON(http.StatusOK, gin.H{"ok": ok, "user_id": actor.UserID})
	})
	return r
}

func serve(r *gin.Engine, path string, setup func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var alice = service.Actor{UserID: 7, Username: "alice", SessionID: "s1"}

// TestAuthMiddleware_RedirectsAnonymous 测试内容：没有 token 时跳转登录页并带上原地址
func TestAuthMiddleware_RedirectsAnonymous(t *testing.T) {
	r := newEngine(AuthMiddleware(stubAuth{}))

	w := serve(r, "/bill/?page=2", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login?next=%2Fbill%2F%3Fpage%3D2", w.Header().Get("Location"))
}

func TestAuthMiddleware_BearerAndCookie(t *testing.T) {
	r := newEngine(AuthMiddleware(stubAuth{tokens: map[string]service.Actor{"good": alice}}))

	w := serve(r, "/bill/", func(req *http.Request) { req.Header.Set("Authorization", "Bearer good") })
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"user_id":7}`, w.Body.String())

	w = serve(r, "/bill/", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "good"}) })
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, "/bill/", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "stale"}) })
	assert.Equal(t, http.StatusFound, w.Code)
}

// TestAuthMiddleware_BackendFailure 测试内容：会话存储出错时返回 500 而不是跳转
func TestAuthMiddleware_BackendFailure(t *testing.T) {
	r := newEngine(AuthMiddleware(stubAuth{err: errors.New("db down")}))

	w := serve(r, "/bill/", func(req *http.Request) { req.Header.Set("Authorization", "Bearer good") })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	r := newEngine(OptionalAuth(stubAuth{tokens: map[string]service.Actor{"good": alice}}))

	w := serve(r, "/bill/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":false,"user_id":0}`, w.Body.String())

	w = serve(r, "/bill/", func(req *http.Request) { req.Header.Set("Authorization", "Bearer good") })
	assert.JSONEq(t, `{"ok":true,"user_id":7}`, w.Body.String())
}

// TestRequestLogger_Fields 测试内容：请求日志带状态码和用户 id
func TestRequestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	r := newEngine(RequestLogger(), AuthMiddleware(stubAuth{tokens: map[string]service.Actor{"good": alice}}))
	serve(r, "/bill/?page=1", func(req *http.Request) { req.Header.Set("Authorization", "Bearer good") })

	out := buf.String()
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"path":"/bill/?page=1"`)
	assert.Contains(t, out, `"user_id":7`)
}
