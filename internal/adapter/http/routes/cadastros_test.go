package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"licitax_advisor/internal/adapter/http/handlers"
	"licitax_advisor/internal/adapter/http/handlers/mocks"
	"licitax_advisor/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCadastroTestEngine(ctrl *gomock.Controller, debitoUC *mocks.MockIDebitoUseCase) *gin.Engine {
	r := gin.New()
	addCadastroRoutes(r.Group("/v1"),
		handlers.NewClienteHandler(mocks.NewMockIClienteUseCase(ctrl)),
		handlers.NewLicitacaoHandler(mocks.NewMockILicitacaoUseCase(ctrl)),
		handlers.NewDocumentoHandler(mocks.NewMockIDocumentoUseCase(ctrl)),
		handlers.NewDebitoHandler(debitoUC),
		handlers.NewPagamentoHandler(mocks.NewMockIPagamentoUseCase(ctrl)),
	)
	return r
}

func TestCadastroRoutes_DebitoStatusTransition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// The status transition is the débito's PUT itself, not a sub-path.
	t.Run("PUT /debitos/:id is routed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		debitoUC := mocks.NewMockIDebitoUseCase(ctrl)
		debitoUC.EXPECT().
			UpdateStatus(gomock.Any(), "deb-1", entities.DebitoStatusPago).
			Return(entities.Debito{ID: "deb-1", Status: entities.DebitoStatusPago}, nil)

		r := newCadastroTestEngine(ctrl, debitoUC)

		req := httptest.NewRequest(http.MethodPut, "/v1/debitos/deb-1", bytes.NewBufferString(`{"status":"PAGO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("no /status sub-path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r := newCadastroTestEngine(ctrl, mocks.NewMockIDebitoUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPut, "/v1/debitos/deb-1/status", bytes.NewBufferString(`{"status":"PAGO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
