package middleware

import (
	"context"
	"net/http"
	"strings"

	fbAuth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// Context keys set by RequireFirebaseAuth.
const (
	KeyUID    = "firebase_uid"
	KeyClaims = "firebase_claims"
)

// TokenVerifier verifies Firebase ID tokens. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbAuth.Token, error)
}

// RequireFirebaseAuth validates a Firebase ID token (Bearer) and sets the
// caller's uid and claims in context. Failures abort with the callable
// UNAUTHENTICATED error.
//
// Typical usage:
//
//	mw.RequireFirebaseAuth(firebaseAuthClient)
func RequireFirebaseAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			abortUnauthenticated(c, "firebase auth not configured")
			return
		}

		authHeader := c.GetHeader("Authorization")
		idToken, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || idToken == "" {
			abortUnauthenticated(c, "The function must be called while authenticated.")
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			_ = c.Error(err)
			abortUnauthenticated(c, "The function must be called while authenticated.")
			return
		}

		c.Set(KeyUID, token.UID)
		c.Set(KeyClaims, token.Claims)
		c.Next()
	}
}

// RequireClaim ensures the authenticated caller carries claim == true.
func RequireClaim(claim string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, _ := c.Get(KeyClaims)
		claims, _ := v.(map[string]interface{})
		if v, ok := claims[claim].(bool); !ok || !v {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": gin.H{
				"status":  "PERMISSION_DENIED",
				"message": "forbidden: missing " + claim + " claim",
			}})
			return
		}
		c.Next()
	}
}

// TokenFromQuery copies an ID token from the named query parameter into the
// Authorization header when the header is absent. Browsers cannot set headers
// on websocket handshakes.
func TokenFromQuery(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			if tok := c.Query(param); tok != "" {
				c.Request.Header.Set("Authorization", "Bearer "+tok)
			}
		}
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
		"status":  "UNAUTHENTICATED",
		"message": msg,
	}})
}
