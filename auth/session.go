package auth

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Arobaczewski/eCommerce-sub000/models"
)

const sessionTTL = 24 * time.Hour

// POST /session
//
// Issues an anonymous browser session. The storefront has no accounts; the
// cart and favorites hang off this id, which stands in for the client app's
// shared context state.
func CreateSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "session_" + strings.ReplaceAll(uuid.NewString(), "-", "")

		session := models.Session{
			ID:        sessionID,
			ExpiresAt: time.Now().Add(sessionTTL),
		}
		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		// An empty cart is created up front so cart handlers can assume one exists
		cart := models.Cart{SessionID: sessionID}
		if err := db.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}

		token, err := issueSessionToken(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": session.ExpiresAt,
		})
	}
}

func issueSessionToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": id,
		"exp":        time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
