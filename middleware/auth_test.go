package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meal-planner-api/config"
	"meal-planner-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetRole(c)})
	})
	r.GET("/", handlers...)
	return r
}

func do(r http.Handler, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(&models.User{ID: 4, Email: "a@example.com", Role: models.RoleAdmin})
	if err != nil {
		t.Fatal(err)
	}
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 4 || claims.Role != models.RoleAdmin || claims.Email != "a@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestParseToken_Rejects(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
	})
	s, _ := expired.SignedString(config.JWTSecret)
	if _, err := ParseToken(s); err == nil {
		t.Fatal("expired token accepted")
	}

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1})
	s, _ = forged.SignedString([]byte("not-the-secret"))
	if _, err := ParseToken(s); err == nil {
		t.Fatal("token with wrong key accepted")
	}
}

func TestAuthRequired(t *testing.T) {
	r := newRouter(AuthRequired())
	if w := do(r, "/", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: got %d", w.Code)
	}
	if w := do(r, "/", "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: got %d", w.Code)
	}

	token, _ := GenerateToken(&models.User{ID: 2, Role: models.RoleMember})
	if w := do(r, "/", token); w.Code != http.StatusOK {
		t.Fatalf("valid token: got %d %s", w.Code, w.Body)
	}
	if w := do(r, "/?token="+token, ""); w.Code != http.StatusOK {
		t.Fatalf("query token: got %d", w.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	r := newRouter(OptionalAuth())
	w := do(r, "/", "garbage")
	if w.Code != http.StatusOK || w.Body.String() != `{"role":"","user_id":0}` {
		t.Fatalf("anonymous request: %d %s", w.Code, w.Body)
	}

	token, _ := GenerateToken(&models.User{ID: 5, Role: models.RoleMember})
	w = do(r, "/", token)
	if w.Body.String() != `{"role":"member","user_id":5}` {
		t.Fatalf("identified request: %s", w.Body)
	}
}

func TestRoleRequired(t *testing.T) {
	r := newRouter(AuthRequired(), RoleRequired(models.RoleAdmin))

	member, _ := GenerateToken(&models.User{ID: 1, Role: models.RoleMember})
	if w := do(r, "/", member); w.Code != http.StatusForbidden {
		t.Fatalf("member: got %d", w.Code)
	}
	admin, _ := GenerateToken(&models.User{ID: 2, Role: models.RoleAdmin})
	if w := do(r, "/", admin); w.Code != http.StatusOK {
		t.Fatalf("admin: got %d", w.Code)
	}
}
