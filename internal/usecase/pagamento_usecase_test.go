package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"licitax_advisor/internal/domain/entities"
	mock_interfaces "licitax_advisor/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPagamentoUseCase_CreateAndApprove(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix"}`)

	t.Run("invalid debito id", func(t *testing.T) {
		uc := NewPagamentoUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "  ", payload)
		if !errors.Is(err, ErrInvalidPagamentoDebitoID) {
			t.Fatalf("expected ErrInvalidPagamentoDebitoID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewPagamentoUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "deb-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("debito not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		debitoRepo := mock_interfaces.NewMockIDebitoRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPagamentoUseCase(nil, debitoRepo, gateway)

		debitoRepo.EXPECT().GetByID(gomock.Any(), "deb-1").Return(entities.Debito{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "deb-1", payload)
		if !errors.Is(err, ErrDebitoNotFound) {
			t.Fatalf("expected ErrDebitoNotFound, got %v", err)
		}
	})

	t.Run("debito already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		debitoRepo := mock_interfaces.NewMockIDebitoRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPagamentoUseCase(nil, debitoRepo, gateway)

		debitoRepo.EXPECT().GetByID(gomock.Any(), "deb-1").Return(entities.Debito{ID: "deb-1", Status: entities.DebitoStatusPago}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "deb-1", payload)
		if !errors.Is(err, ErrDebitoJaPago) {
			t.Fatalf("expected ErrDebitoJaPago, got %v", err)
		}
	})

	t.Run("payload without payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		debitoRepo := mock_interfaces.NewMockIDebitoRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPagamentoUseCase(nil, debitoRepo, gateway)

		debitoRepo.EXPECT().GetByID(gomock.Any(), "deb-1").Return(entities.Debito{ID: "deb-1", Status: entities.DebitoStatusPendente}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "deb-1", json.RawMessage(`{"installments":1}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("approved payment settles the debito", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagamentoRepository(ctrl)
		debitoRepo := mock_interfaces.NewMockIDebitoRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPagamentoUseCase(repo, debitoRepo, gateway)

		deb := entities.Debito{ID: "deb-1", Descricao: "Mensalidade", Valor: 150.5, Status: entities.DebitoStatusPendente}
		debitoRepo.EXPECT().GetByID(gomock.Any(), "deb-1").Return(deb, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, enriched json.RawMessage) (string, string, json.RawMessage, error) {
			var m map[string]any
			if err := json.Unmarshal(enriched, &m); err != nil {
				t.Fatalf("enriched payload is not json: %v", err)
			}
			if m["transaction_amount"] != 150.5 {
				t.Fatalf("expected transaction_amount from debito, got %v", m["transaction_amount"])
			}
			if m["external_reference"] != "deb-1" {
				t.Fatalf("expected external_reference deb-1, got %v", m["external_reference"])
			}
			return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
		})

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Pagamento) (entities.Pagamento, error) {
			if p.ID != "mp-1" || p.DebitoID != "deb-1" {
				t.Fatalf("unexpected pagamento: %+v", p)
			}
			if p.Status != entities.PagamentoStatusAprovado {
				t.Fatalf("expected aprovado, got %s", p.Status)
			}
			return p, nil
		})
		debitoRepo.EXPECT().UpdateStatus(gomock.Any(), "deb-1", entities.DebitoStatusPago).Return(entities.Debito{ID: "deb-1", Status: entities.DebitoStatusPago}, nil)

		created, err := uc.CreateAndApprove(context.Background(), "deb-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.PagamentoStatusAprovado {
			t.Fatalf("expected aprovado, got %s", created.Status)
		}
	})

	t.Run("rejected payment leaves the debito alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagamentoRepository(ctrl)
		debitoRepo := mock_interfaces.NewMockIDebitoRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPagamentoUseCase(repo, debitoRepo, gateway)

		debitoRepo.EXPECT().GetByID(gomock.Any(), "deb-1").Return(entities.Debito{ID: "deb-1", Valor: 10, Descricao: "x", Status: entities.DebitoStatusPendente}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "rejected", json.RawMessage(`{"id":"mp-2","status":"rejected"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Pagamento) (entities.Pagamento, error) {
			if p.Status != entities.PagamentoStatusNegado {
				t.Fatalf("expected negado, got %s", p.Status)
			}
			return p, nil
		})
		// No UpdateStatus expectation: the transition must not happen.

		_, err := uc.CreateAndApprove(context.Background(), "deb-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		debitoRepo := mock_interfaces.NewMockIDebitoRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPagamentoUseCase(nil, debitoRepo, gateway)

		debitoRepo.EXPECT().GetByID(gomock.Any(), "deb-1").Return(entities.Debito{ID: "deb-1", Valor: 10, Descricao: "x", Status: entities.DebitoStatusPendente}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.CreateAndApprove(context.Background(), "deb-1", payload)
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})
}

func TestPagamentoUseCase_ListByDebitoID(t *testing.T) {
	t.Run("invalid debito id", func(t *testing.T) {
		uc := NewPagamentoUseCase(nil, nil, nil)
		_, err := uc.ListByDebitoID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPagamentoDebitoID) {
			t.Fatalf("expected ErrInvalidPagamentoDebitoID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagamentoRepository(ctrl)
		uc := NewPagamentoUseCase(repo, nil, nil)

		repo.EXPECT().ListByDebitoID(gomock.Any(), "deb-1").Return([]entities.Pagamento{{ID: "mp-1", Date: time.Now().UTC()}}, nil)

		got, err := uc.ListByDebitoID(context.Background(), "deb-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "mp-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
