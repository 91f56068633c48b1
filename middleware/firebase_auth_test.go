package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	fbAuth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubVerifier map[string]*fbAuth.Token

func (s stubVerifier) VerifyIDToken(_ context.Context, idToken string) (*fbAuth.Token, error) {
	if t, ok := s[idToken]; ok {
		return t, nil
	}
	return nil, errors.New("invalid token")
}

func newTestEngine(v TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", TokenFromQuery("token"), RequireFirebaseAuth(v), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(KeyUID))
	})
	r.GET("/admin", RequireFirebaseAuth(v), RequireClaim("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func serve(r *gin.Engine, target, bearer string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireFirebaseAuth(t *testing.T) {
	r := newTestEngine(stubVerifier{"good": {UID: "u1"}})

	assert.Equal(t, http.StatusUnauthorized, serve(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/me", "bad").Code)

	w := serve(r, "/me", "good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())

	w = serve(r, "/me?token=good", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireFirebaseAuthWithoutVerifier(t *testing.T) {
	r := newTestEngine(nil)
	w := serve(r, "/me", "anything")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHENTICATED")
}

func TestRequireClaim(t *testing.T) {
	r := newTestEngine(stubVerifier{
		"user":  {UID: "u1", Claims: map[string]interface{}{}},
		"admin": {UID: "u2", Claims: map[string]interface{}{"admin": true}},
	})

	assert.Equal(t, http.StatusForbidden, serve(r, "/admin", "user").Code)
	assert.Equal(t, http.StatusNoContent, serve(r, "/admin", "admin").Code)
}
