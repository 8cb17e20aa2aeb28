package middlewares_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/menu-service/middlewares"
	"github.com/yeremiapane/menu-service/utils"
)

func newTokenService() *utils.TokenService {
	return utils.NewTokenService("primary-secret", "refresh-secret", time.Hour, 2*time.Hour)
}

func newGateRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	r := gin.New()
	chain := append([]gin.HandlerFunc{}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		role, _ := c.Get(middlewares.ContextRoleKey)
		_, annotated := c.Get(middlewares.ContextUserIDKey)
		c.JSON(http.StatusOK, gin.H{"annotated": annotated, "role": role})
	})
	r.GET("/resource", chain...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/resource", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error.Code
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := newGateRouter(middlewares.RequireAuth(newTokenService()))

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_ERROR", errorCode(t, w.Body.Bytes()))
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	ts := newTokenService()
	r := newGateRouter(middlewares.RequireAuth(ts))

	token, _ := ts.Issue(1, "admin")

	// No Bearer scheme and an empty token segment are both treated as
	// "no token", not as an invalid token.
	for _, header := range []string{"Token " + token, token, "Bearer ", "Bearer"} {
		w := doGet(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Equal(t, "AUTH_ERROR", errorCode(t, w.Body.Bytes()), "header %q", header)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r := newGateRouter(middlewares.RequireAuth(newTokenService()))

	w := doGet(r, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, w.Body.Bytes()))
}

func TestRequireAuthExpiredToken(t *testing.T) {
	expired := utils.NewTokenService("primary-secret", "refresh-secret", -time.Minute, time.Hour)
	token, _ := expired.Issue(1, "admin")

	r := newGateRouter(middlewares.RequireAuth(newTokenService()))

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "TOKEN_EXPIRED", errorCode(t, w.Body.Bytes()))
}

func TestRequireAuthValidToken(t *testing.T) {
	ts := newTokenService()
	token, _ := ts.Issue(5, "manager")

	r := newGateRouter(middlewares.RequireAuth(ts))

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["annotated"])
	assert.Equal(t, "manager", resp["role"])
}

func TestOptionalAuth(t *testing.T) {
	ts := newTokenService()
	token, _ := ts.Issue(5, "staff")

	r := newGateRouter(middlewares.OptionalAuth(ts))

	// Absent and invalid credentials both proceed unannotated.
	for _, header := range []string{"", "Bearer garbage", "Token abc"} {
		w := doGet(r, header)
		assert.Equal(t, http.StatusOK, w.Code, "header %q", header)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["annotated"], "header %q", header)
	}

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["annotated"])
	assert.Equal(t, "staff", resp["role"])
}

func TestRequireRoleWithoutAuthentication(t *testing.T) {
	r := newGateRouter(middlewares.RequireRole("admin"))

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_ERROR", errorCode(t, w.Body.Bytes()))
}

func TestRequireRoleForbidden(t *testing.T) {
	ts := newTokenService()
	token, _ := ts.Issue(5, "manager")

	r := newGateRouter(middlewares.RequireAuth(ts), middlewares.RequireRole("admin"))

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, w.Body.Bytes()))
}

func TestRequireRoleAllowed(t *testing.T) {
	ts := newTokenService()
	token, _ := ts.Issue(5, "admin")

	r := newGateRouter(middlewares.RequireAuth(ts), middlewares.RequireRole("admin", "manager"))

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
