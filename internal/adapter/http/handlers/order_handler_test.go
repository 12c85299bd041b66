package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordemfacil/internal/adapter/http/handlers/mocks"
	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// asTecnico fakes an authenticated session the way the auth middleware
// would set it.
func asTecnico(nome string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("token", "tok-test")
		c.Set("session", entities.Session{Token: "tok-test", UserID: 1, Nome: nome, Tipo: entities.RoleTecnico})
		c.Next()
	}
}

func TestOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes both query filters through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.List)

		uc.EXPECT().Filter(gomock.Any(), "EM ABERTO", "ana").
			Return([]entities.ServiceOrder{{ID: 1, Cliente: "Ana"}})

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?status=EM+ABERTO&q=ana", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out []entities.ServiceOrder
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(out) != 1 || out[0].Cliente != "Ana" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.Get)

		uc.EXPECT().Get(gomock.Any(), 7).Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.Get)

		uc.EXPECT().Get(gomock.Any(), 1).Return(entities.ServiceOrder{ID: 1, Cliente: "Ana"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", asTecnico("Thomaz"), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing client name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", asTecnico("Thomaz"), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"equipo":"Notebook"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with the session actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", asTecnico("Thomaz"), h.Create)

		uc.EXPECT().Add(gomock.Any(), "Thomaz", gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ interface{}, _ string, input entities.ServiceOrder) (entities.ServiceOrder, error) {
				if input.Cliente != "Ana" {
					t.Fatalf("unexpected input: %+v", input)
				}
				input.ID = 1
				input.Status = entities.OrderStatusAberto
				return input, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"cliente":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Patch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id", asTecnico("Thomaz"), h.Patch)

		uc.EXPECT().Update(gomock.Any(), "Thomaz", 9, gomock.Any()).
			Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/9", bytes.NewBufferString(`{"status":"ENCERRADO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("patched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id", asTecnico("Thomaz"), h.Patch)

		uc.EXPECT().Update(gomock.Any(), "Thomaz", 1, gomock.AssignableToTypeOf(entities.ServiceOrderPatch{})).DoAndReturn(
			func(_ interface{}, _ string, _ int, patch entities.ServiceOrderPatch) (entities.ServiceOrder, error) {
				if patch.Status == nil || *patch.Status != entities.OrderStatusEncerrado {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return entities.ServiceOrder{ID: 1, Cliente: "Ana", Status: *patch.Status}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/1", bytes.NewBufferString(`{"status":"ENCERRADO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc)

	r := gin.New()
	r.DELETE("/v1/orders/:id", asTecnico("Thomaz"), h.Delete)

	uc.EXPECT().Remove(gomock.Any(), "Thomaz", 1).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/orders/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOrderHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc)

	r := gin.New()
	r.GET("/v1/orders/export", h.Export)

	uc.EXPECT().ExportSnapshot(gomock.Any()).Return([]byte(`{"ordens": []}`), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"ordens": []}` {
		t.Fatalf("expected the snapshot verbatim, got %s", w.Body.String())
	}
}

func TestOrderHandler_LoadSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/snapshot", asTecnico("Admin"), h.LoadSnapshot)

		uc.EXPECT().LoadSnapshot(gomock.Any(), "Admin", gomock.Any()).Return(usecase.ErrInvalidSnapshot)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/snapshot", bytes.NewBufferString(`{"logs":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("loaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/snapshot", asTecnico("Admin"), h.LoadSnapshot)

		uc.EXPECT().LoadSnapshot(gomock.Any(), "Admin", []byte(`{"ordens":[]}`)).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/snapshot", bytes.NewBufferString(`{"ordens":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ImportSpreadsheet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	buildUpload := func(t *testing.T, rows [][]string, fields map[string]string) (*bytes.Buffer, string) {
		t.Helper()
		f := excelize.NewFile()
		defer f.Close()
		sheet := f.GetSheetName(0)
		for i, row := range rows {
			for j, cell := range row {
				name, err := excelize.CoordinatesToCellName(j+1, i+1)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if err := f.SetCellValue(sheet, name, cell); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		}

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("file", "ordens.xlsx")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.Write(part); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for k, v := range fields {
			mw.WriteField(k, v)
		}
		mw.Close()
		return &body, mw.FormDataContentType()
	}

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/import", asTecnico("Admin"), h.ImportSpreadsheet)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/import", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("imports the mapped rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/import", asTecnico("Admin"), h.ImportSpreadsheet)

		uc.EXPECT().BulkImport(gomock.Any(), "Admin", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, orders []entities.ServiceOrder) (int, error) {
				if len(orders) != 2 || orders[0].Cliente != "Ana" || orders[1].Cliente != "Bruno" {
					t.Fatalf("unexpected orders: %+v", orders)
				}
				return len(orders), nil
			},
		)

		body, contentType := buildUpload(t, [][]string{
			{"CLIENTE", "EQUIPO"},
			{"Ana", "Notebook"},
			{"Bruno", "Impressora"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/import", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if w.Body.String() != `{"imported":2}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("no usable rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/import", asTecnico("Admin"), h.ImportSpreadsheet)

		uc.EXPECT().BulkImport(gomock.Any(), "Admin", gomock.Any()).Return(0, usecase.ErrEmptyImportPayload)

		body, contentType := buildUpload(t, [][]string{
			{"CLIENTE", "EQUIPO"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/import", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapOrderError_Default(t *testing.T) {
	appErr := mapOrderError(errors.New("boom"))
	if appErr.HTTPStatus != http.StatusInternalServerError || appErr.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected mapping: %+v", appErr)
	}
}
