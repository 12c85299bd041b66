package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ordemfacil/internal/adapter/http/handlers/mocks"
	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)

		auth.EXPECT().Authenticate(gomock.Any(), "").
			Return(entities.Session{}, usecase.ErrNotAuthenticated)

		r := gin.New()
		r.GET("/v1/orders", RequireAuth(auth), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("stale token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)

		auth.EXPECT().Authenticate(gomock.Any(), "tok-stale").
			Return(entities.Session{}, usecase.ErrNotAuthenticated)

		r := gin.New()
		r.GET("/v1/orders", RequireAuth(auth), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		req.Header.Set("Authorization", "Bearer tok-stale")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token exposes the session downstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)

		session := entities.Session{Token: "tok-1", UserID: 1, Nome: "Thomaz", Tipo: entities.RoleTecnico}
		auth.EXPECT().Authenticate(gomock.Any(), "tok-1").Return(session, nil)

		r := gin.New()
		r.GET("/v1/orders", RequireAuth(auth), func(c *gin.Context) {
			if Actor(c) != "Thomaz" {
				t.Fatalf("unexpected actor: %q", Actor(c))
			}
			if Token(c) != "tok-1" {
				t.Fatalf("unexpected token: %q", Token(c))
			}
			if Session(c) != session {
				t.Fatalf("unexpected session: %+v", Session(c))
			}
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	withRole := func(tipo entities.Role) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(sessionKey, entities.Session{Token: "tok-1", UserID: 1, Nome: "Alguem", Tipo: tipo})
			c.Next()
		}
	}

	t.Run("technician is rejected", func(t *testing.T) {
		r := gin.New()
		r.POST("/v1/sync/now", withRole(entities.RoleTecnico), RequireAdmin(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/now", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin passes", func(t *testing.T) {
		r := gin.New()
		r.POST("/v1/sync/now", withRole(entities.RoleAdmin), RequireAdmin(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/now", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no session at all is rejected", func(t *testing.T) {
		r := gin.New()
		r.POST("/v1/sync/now", RequireAdmin(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/now", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
