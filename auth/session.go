package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lvdark77/Online-Store/session"
)

const sessionTokenTTL = 24 * time.Hour

// POST /session
//
// Opens a fresh storefront session and hands back the token the client must
// present on every session-scoped call. No credentials are involved; login
// happens later, inside the session, and is a mock keyed by email only.
func CreateSession(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := mgr.Create(c.Request.Context())

		token, err := issueSessionToken(sess.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sess.ID,
			"token":      token,
			"expires_at": time.Now().Add(sessionTokenTTL),
		})
	}
}

func issueSessionToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": id,
		"exp":        time.Now().Add(sessionTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
