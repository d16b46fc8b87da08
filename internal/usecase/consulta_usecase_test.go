package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"licitax_advisor/internal/domain/entities"
	mock_interfaces "licitax_advisor/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestConsultaUseCase_Contratacoes(t *testing.T) {
	t.Run("missing period", func(t *testing.T) {
		uc := NewConsultaUseCase(nil)
		_, err := uc.Contratacoes(context.Background(), entities.ConsultaContratacoes{DataInicial: "20260101"})
		if !errors.Is(err, ErrInvalidConsultaPeriodo) {
			t.Fatalf("expected ErrInvalidConsultaPeriodo, got %v", err)
		}
	})

	t.Run("defaults pagination and forwards", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pncp := mock_interfaces.NewMockIConsultaPNCP(ctrl)
		uc := NewConsultaUseCase(pncp)

		pncp.EXPECT().ConsultarContratacoes(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f entities.ConsultaContratacoes) (entities.RespostaProxy, error) {
			if f.Pagina != 1 || f.TamanhoPagina != 50 {
				t.Fatalf("expected pagination defaults, got %+v", f)
			}
			return entities.RespostaProxy{StatusCode: http.StatusOK, ContentType: "application/json", Body: []byte(`{"data":[]}`)}, nil
		})

		resp, err := uc.Contratacoes(context.Background(), entities.ConsultaContratacoes{DataInicial: "20260101", DataFinal: "20260131"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("upstream error payload relayed untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pncp := mock_interfaces.NewMockIConsultaPNCP(ctrl)
		uc := NewConsultaUseCase(pncp)

		upstream := entities.RespostaProxy{StatusCode: http.StatusUnprocessableEntity, ContentType: "application/json", Body: []byte(`{"message":"data invalida"}`)}
		pncp.EXPECT().ConsultarContratacoes(gomock.Any(), gomock.Any()).Return(upstream, nil)

		resp, err := uc.Contratacoes(context.Background(), entities.ConsultaContratacoes{DataInicial: "bad", DataFinal: "dates"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusUnprocessableEntity || string(resp.Body) != `{"message":"data invalida"}` {
			t.Fatalf("expected relayed upstream payload, got %+v", resp)
		}
	})
}

func TestConsultaUseCase_Contratos(t *testing.T) {
	t.Run("missing period", func(t *testing.T) {
		uc := NewConsultaUseCase(nil)
		_, err := uc.Contratos(context.Background(), entities.ConsultaContratos{})
		if !errors.Is(err, ErrInvalidConsultaPeriodo) {
			t.Fatalf("expected ErrInvalidConsultaPeriodo, got %v", err)
		}
	})

	t.Run("keeps explicit pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pncp := mock_interfaces.NewMockIConsultaPNCP(ctrl)
		uc := NewConsultaUseCase(pncp)

		pncp.EXPECT().ConsultarContratos(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f entities.ConsultaContratos) (entities.RespostaProxy, error) {
			if f.Pagina != 3 || f.TamanhoPagina != 10 {
				t.Fatalf("expected explicit pagination, got %+v", f)
			}
			return entities.RespostaProxy{StatusCode: http.StatusOK}, nil
		})

		_, err := uc.Contratos(context.Background(), entities.ConsultaContratos{DataInicial: "20260101", DataFinal: "20260131", Pagina: 3, TamanhoPagina: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
