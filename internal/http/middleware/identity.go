// README: Caller identity middleware. Resolves a Firebase ID token when one is sent;
// requests are never rejected here.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payana/internal/history"
	"payana/internal/infra"
)

const ownerKey = "owner"

// Identity stores the caller's UID in the gin context, or history.Anonymous when
// there is no verifier, no bearer token, or the token does not verify.
func Identity(verifier infra.TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		owner := history.Anonymous
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok && verifier != nil {
			uid, err := verifier.VerifyIDToken(c.Request.Context(), token)
			switch {
			case err != nil:
				logger.Debug("id token rejected", zap.Error(err), zap.String("trace_id", TraceID(c)))
			case uid != "":
				owner = uid
			}
		}
		c.Set(ownerKey, owner)
		c.Next()
	}
}

// Owner returns the identity resolved by Identity.
func Owner(c *gin.Context) string {
	if v := c.GetString(ownerKey); v != "" {
		return v
	}
	return history.Anonymous
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
