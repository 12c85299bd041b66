package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ordemfacil/internal/adapter/http/handlers/mocks"
	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSyncHandler_GetConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	orders := mocks.NewMockIOrderUseCase(ctrl)
	catalog := mocks.NewMockICatalogUseCase(ctrl)
	h := NewSyncHandler(orders, catalog)

	r := gin.New()
	r.GET("/v1/sync/config", h.GetConfig)

	orders.EXPECT().Config(gomock.Any()).Return(entities.DatabaseConfig{
		Path:     "http://replica.local/dados",
		AutoSync: true,
		Username: "sync",
		Password: "s3gredo",
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/sync/config", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out entities.DatabaseConfig
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if out.Path != "http://replica.local/dados" || !out.AutoSync || out.Username != "sync" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if out.Password != "" || strings.Contains(w.Body.String(), "s3gredo") {
		t.Fatalf("password leaked: %s", w.Body.String())
	}
}

func TestSyncHandler_PutConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("stored with the session actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mocks.NewMockIOrderUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSyncHandler(orders, catalog)

		r := gin.New()
		r.PUT("/v1/sync/config", asTecnico("Admin"), h.PutConfig)

		orders.EXPECT().SetConfig(gomock.Any(), "Admin", entities.DatabaseConfig{
			Path:     "smb:////fileserver/dados",
			AutoSync: true,
		}).Return(nil)

		body := bytes.NewBufferString(`{"path":"smb:////fileserver/dados","autoSync":true}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/sync/config", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mocks.NewMockIOrderUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSyncHandler(orders, catalog)

		r := gin.New()
		r.PUT("/v1/sync/config", h.PutConfig)

		req := httptest.NewRequest(http.MethodPut, "/v1/sync/config", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSyncHandler_SyncNow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	orders := mocks.NewMockIOrderUseCase(ctrl)
	catalog := mocks.NewMockICatalogUseCase(ctrl)
	h := NewSyncHandler(orders, catalog)

	r := gin.New()
	r.POST("/v1/sync/now", h.SyncNow)

	orders.EXPECT().SyncNow(gomock.Any()).Return(interfaces.SyncResult{Success: true})
	catalog.EXPECT().SyncNow(gomock.Any()).Return(interfaces.SyncResult{Success: false, Error: "no remote location configured"})

	req := httptest.NewRequest(http.MethodPost, "/v1/sync/now", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out struct {
		Orders  interfaces.SyncResult `json:"orders"`
		Catalog interfaces.SyncResult `json:"catalog"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !out.Orders.Success || out.Catalog.Success || out.Catalog.Error == "" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestSyncHandler_Pull(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	orders := mocks.NewMockIOrderUseCase(ctrl)
	catalog := mocks.NewMockICatalogUseCase(ctrl)
	h := NewSyncHandler(orders, catalog)

	r := gin.New()
	r.POST("/v1/sync/pull", asTecnico("Admin"), h.Pull)

	orders.EXPECT().PullRemote(gomock.Any(), "Admin").Return(interfaces.SyncResult{Success: true})

	req := httptest.NewRequest(http.MethodPost, "/v1/sync/pull", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out interfaces.SyncResult
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !out.Success {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
