package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"licitax_advisor/internal/adapter/http/handlers/mocks"
	"licitax_advisor/internal/domain/entities"
	"licitax_advisor/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPagamentoHandler_CreateByDebitoID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/debitos/:id/pagamentos", h.CreateByDebitoID)

		req := httptest.NewRequest(http.MethodPost, "/v1/debitos/deb-1/pagamentos", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body forwards empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/debitos/:id/pagamentos", h.CreateByDebitoID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "deb-1", json.RawMessage("{}")).Return(entities.Pagamento{ID: "mp-1", DebitoID: "deb-1", Status: entities.PagamentoStatusAprovado}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/debitos/deb-1/pagamentos", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mp_payload envelope is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/debitos/:id/pagamentos", h.CreateByDebitoID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "deb-1", json.RawMessage(`{"payment_method_id":"pix"}`)).Return(entities.Pagamento{ID: "mp-1", DebitoID: "deb-1", Status: entities.PagamentoStatusAprovado}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/debitos/deb-1/pagamentos", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("debito already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/debitos/:id/pagamentos", h.CreateByDebitoID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "deb-1", gomock.Any()).Return(entities.Pagamento{}, usecase.ErrDebitoJaPago)

		req := httptest.NewRequest(http.MethodPost, "/v1/debitos/deb-1/pagamentos", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPagamentoHandler_GetByDebitoID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.GET("/v1/debitos/:id/pagamentos", h.GetByDebitoID)

		uc.EXPECT().ListByDebitoID(gomock.Any(), "deb-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/debitos/deb-1/pagamentos", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns the latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.GET("/v1/debitos/:id/pagamentos", h.GetByDebitoID)

		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().ListByDebitoID(gomock.Any(), "deb-1").Return([]entities.Pagamento{
			{ID: "mp-1", DebitoID: "deb-1", Date: base, Status: entities.PagamentoStatusNegado},
			{ID: "mp-2", DebitoID: "deb-1", Date: base.Add(time.Hour), Status: entities.PagamentoStatusAprovado},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/debitos/deb-1/pagamentos", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "mp-2" {
			t.Fatalf("expected latest payment, got %s", w.Body.String())
		}
	})
}
