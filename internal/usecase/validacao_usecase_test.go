package usecase

import (
	"context"
	"errors"
	"testing"

	"licitax_advisor/internal/domain/entities"
	mock_interfaces "licitax_advisor/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestValidacaoUseCase_Validate(t *testing.T) {
	docs := []entities.DocumentoParaValidacao{
		{Nome: "CND Federal", MimeType: "application/pdf", Conteudo: []byte("pdf bytes")},
	}

	t.Run("empty criterios", func(t *testing.T) {
		uc := NewValidacaoUseCase(nil)
		_, err := uc.Validate(context.Background(), docs, "   ")
		if !errors.Is(err, ErrInvalidValidacaoInput) {
			t.Fatalf("expected ErrInvalidValidacaoInput, got %v", err)
		}
	})

	t.Run("no documents", func(t *testing.T) {
		uc := NewValidacaoUseCase(nil)
		_, err := uc.Validate(context.Background(), nil, "criterios do edital")
		if !errors.Is(err, ErrInvalidValidacaoInput) {
			t.Fatalf("expected ErrInvalidValidacaoInput, got %v", err)
		}
	})

	t.Run("document without nome", func(t *testing.T) {
		uc := NewValidacaoUseCase(nil)
		_, err := uc.Validate(context.Background(), []entities.DocumentoParaValidacao{{Conteudo: []byte("x")}}, "criterios")
		if !errors.Is(err, ErrInvalidValidacaoInput) {
			t.Fatalf("expected ErrInvalidValidacaoInput, got %v", err)
		}
	})

	t.Run("document without conteudo or gcs uri", func(t *testing.T) {
		uc := NewValidacaoUseCase(nil)
		_, err := uc.Validate(context.Background(), []entities.DocumentoParaValidacao{{Nome: "CND"}}, "criterios")
		if !errors.Is(err, ErrInvalidValidacaoInput) {
			t.Fatalf("expected ErrInvalidValidacaoInput, got %v", err)
		}
	})

	t.Run("delegates to validator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		validator := mock_interfaces.NewMockIDocumentValidator(ctrl)
		uc := NewValidacaoUseCase(validator)

		verdict := entities.ResultadoValidacao{Completo: false, Validade: map[string]bool{"CND Federal": true}, Faltantes: []string{"Atestado de capacidade"}}
		validator.EXPECT().Validate(gomock.Any(), docs, "criterios do edital").Return(verdict, nil)

		got, err := uc.Validate(context.Background(), docs, "criterios do edital")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Completo || len(got.Faltantes) != 1 {
			t.Fatalf("unexpected verdict: %+v", got)
		}
	})

	t.Run("validator failure passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		validator := mock_interfaces.NewMockIDocumentValidator(ctrl)
		uc := NewValidacaoUseCase(validator)

		validator.EXPECT().Validate(gomock.Any(), docs, "criterios").Return(entities.ResultadoValidacao{}, errors.New("model unavailable"))

		_, err := uc.Validate(context.Background(), docs, "criterios")
		if err == nil || err.Error() != "model unavailable" {
			t.Fatalf("expected model error, got %v", err)
		}
	})
}
