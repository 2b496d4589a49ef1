package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func setJWTSecretEnv(t *testing.T, secret string) {
	t.Helper()
	_ = os.Setenv("JWT_SECRET", secret)
	t.Cleanup(func() { _ = os.Unsetenv("JWT_SECRET") })
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/ok", func(c *gin.Context) {
		uid, _ := c.Get("userID")
		role, _ := c.Get("role")
		c.JSON(200, gin.H{"userID": uid, "role": role, "reached_next": true})
	})
	return r
}

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func doReq(r *gin.Engine, path, token string, setCookie bool) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if setCookie {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	setJWTSecretEnv(t, "test-secret")

	w := doReq(newTestRouter(), "/ok", "", false)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d want 401", w.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	setJWTSecretEnv(t, "test-secret")

	w := doReq(newTestRouter(), "/ok", "not-a-token", true)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d want 401", w.Code)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	setJWTSecretEnv(t, "test-secret")

	tok := signHS256(t, "other-secret", jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := doReq(newTestRouter(), "/ok", tok, true)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d want 401", w.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	setJWTSecretEnv(t, "test-secret")

	tok := signHS256(t, "test-secret", jwt.MapClaims{
		"user_id": 42,
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := doReq(newTestRouter(), "/ok", tok, true)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d want 200 body=%s", w.Code, w.Body.String())
	}
}

func TestOptionalAuthMiddleware_AnonymousPasses(t *testing.T) {
	setJWTSecretEnv(t, "test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(OptionalAuthMiddleware())
	r.GET("/maybe", func(c *gin.Context) {
		if UserIDPtr(c) != nil {
			t.Fatal("expected no identity")
		}
		c.JSON(200, gin.H{"ok": true})
	})

	w := doReq(r, "/maybe", "", false)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", w.Code)
	}
}

func TestOptionalAuthMiddleware_AttachesIdentity(t *testing.T) {
	setJWTSecretEnv(t, "test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(OptionalAuthMiddleware())
	r.GET("/maybe", func(c *gin.Context) {
		id := UserIDPtr(c)
		if id == nil || *id != 42 {
			t.Fatalf("id=%v want 42", id)
		}
		c.JSON(200, gin.H{"ok": true})
	})

	tok := signHS256(t, "test-secret", jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := doReq(r, "/maybe", tok, true)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", w.Code)
	}
}

func TestAdminMiddleware_RejectsNonAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("role", "member") }, AdminMiddleware())
	r.GET("/admin", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := doReq(r, "/admin", "", false)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status=%d want 403", w.Code)
	}
}

func TestLocaleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(LocaleMiddleware())
	r.GET("/loc", func(c *gin.Context) { c.String(200, Locale(c)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/loc?lang=en", nil)
	r.ServeHTTP(w, req)
	if w.Body.String() != "en" {
		t.Fatalf("locale=%q want en", w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/loc", nil)
	req.Header.Set("Accept-Language", "ar-SA,ar;q=0.9")
	r.ServeHTTP(w, req)
	if w.Body.String() != "ar" {
		t.Fatalf("locale=%q want ar", w.Body.String())
	}
}
