package middlewares

import (
	"net/http"
	"strconv"

	"jaz-events-api/config"
	"jaz-events-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func parseAccessToken(c *gin.Context) (userID float64, role string, ok bool) {
	cfg := config.LoadConfig()
	accessToken, err := c.Cookie("access_token")
	if err != nil {
		return 0, "", false
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, okClaims := token.Claims.(jwt.MapClaims)
	if !okClaims {
		return 0, "", false
	}

	switch v := claims["user_id"].(type) {
	case float64:
		userID = v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, "", false
		}
		userID = f
	default:
		return 0, "", false
	}

	if s, okRole := claims["role"].(string); okRole {
		role = s
	}

	return userID, role, true
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := parseAccessToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing access token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches identity when a valid cookie is present
// and continues anonymously otherwise. Public registration posts use it so
// submissions can carry the submitter id without requiring login.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, role, ok := parseAccessToken(c); ok {
			c.Set("userID", userID)
			c.Set("role", role)
		}
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if s, ok := role.(string); !ok || s != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// LocaleMiddleware resolves the request locale from ?lang, falling back to
// Accept-Language, then Arabic.
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("lang")
		if raw == "" {
			raw = c.GetHeader("Accept-Language")
		}
		c.Set("locale", util.PickLocale(raw))
		c.Next()
	}
}

// Locale reads the locale set by LocaleMiddleware, defaulting to Arabic.
func Locale(c *gin.Context) string {
	if v, ok := c.Get("locale"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return util.LocaleArabic
}

// UserIDPtr returns the authenticated user id if one was attached.
func UserIDPtr(c *gin.Context) *int {
	v, ok := c.Get("userID")
	if !ok {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	id := int(f)
	return &id
}
