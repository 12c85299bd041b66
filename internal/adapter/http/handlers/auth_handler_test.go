package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordemfacil/internal/adapter/http/handlers/mocks"
	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "Thomaz", "tiimmich", true).
			Return(entities.Session{Token: "tok-1", UserID: 1, Nome: "Thomaz", Tipo: entities.RoleTecnico}, nil)

		body := bytes.NewBufferString(`{"nome":"Thomaz","senha":"tiimmich","remember":true}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/login", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out struct {
			Token string `json:"token"`
			User  struct {
				Nome string `json:"nome"`
				Tipo string `json:"tipo"`
			} `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if out.Token != "tok-1" || out.User.Nome != "Thomaz" || out.User.Tipo != "tecnico" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "Thomaz", "nope", false).
			Return(entities.Session{}, usecase.ErrInvalidCredentials)

		body := bytes.NewBufferString(`{"nome":"Thomaz","senha":"nope"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/login", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewBufferString(`{"nome":"Thomaz"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/v1/logout", asTecnico("Thomaz"), h.Logout)

	uc.EXPECT().Logout(gomock.Any(), "tok-test").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.PATCH("/v1/account/password", asTecnico("Thomaz"), h.ChangePassword)

		uc.EXPECT().ChangePassword(gomock.Any(), "tok-test", "wrong", "nova123").
			Return(usecase.ErrWrongPassword)

		body := bytes.NewBufferString(`{"senha_atual":"wrong","nova_senha":"nova123"}`)
		req := httptest.NewRequest(http.MethodPatch, "/v1/account/password", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("changed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.PATCH("/v1/account/password", asTecnico("Thomaz"), h.ChangePassword)

		uc.EXPECT().ChangePassword(gomock.Any(), "tok-test", "tiimmich", "nova123").Return(nil)

		body := bytes.NewBufferString(`{"senha_atual":"tiimmich","nova_senha":"nova123"}`)
		req := httptest.NewRequest(http.MethodPatch, "/v1/account/password", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAuthHandler_ChangeUsername(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("name already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.PATCH("/v1/account/username", asTecnico("Pedro"), h.ChangeUsername)

		uc.EXPECT().ChangeUsername(gomock.Any(), "tok-test", "Thomaz", "tiimmich").
			Return(usecase.ErrNameTaken)

		body := bytes.NewBufferString(`{"novo_nome":"Thomaz","senha":"tiimmich"}`)
		req := httptest.NewRequest(http.MethodPatch, "/v1/account/username", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("renamed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.PATCH("/v1/account/username", asTecnico("Pedro"), h.ChangeUsername)

		uc.EXPECT().ChangeUsername(gomock.Any(), "tok-test", "Pedrao", "tiimmich").Return(nil)

		body := bytes.NewBufferString(`{"novo_nome":"Pedrao","senha":"tiimmich"}`)
		req := httptest.NewRequest(http.MethodPatch, "/v1/account/username", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
