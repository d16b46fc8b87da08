package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"licitax_advisor/internal/domain/entities"
	mock_interfaces "licitax_advisor/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLicitacaoUseCase_Create(t *testing.T) {
	now := time.Now().UTC()

	t.Run("missing cliente id", func(t *testing.T) {
		uc := NewLicitacaoUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Licitacao{Numero: "PE-01/2026", DataInicio: now, PrazoAnalise: now})
		if !errors.Is(err, ErrInvalidLicitacaoInput) {
			t.Fatalf("expected ErrInvalidLicitacaoInput, got %v", err)
		}
	})

	t.Run("missing required dates", func(t *testing.T) {
		uc := NewLicitacaoUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Licitacao{ClienteID: "cli-1", Numero: "PE-01/2026"})
		if !errors.Is(err, ErrInvalidLicitacaoInput) {
			t.Fatalf("expected ErrInvalidLicitacaoInput, got %v", err)
		}
	})

	t.Run("cliente not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clienteRepo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewLicitacaoUseCase(nil, clienteRepo)

		clienteRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Cliente{}, nil)

		_, err := uc.Create(context.Background(), entities.Licitacao{ClienteID: "cli-1", Numero: "PE-01/2026", DataInicio: now, PrazoAnalise: now})
		if !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("success denormalizes cliente nome and forces status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILicitacaoRepository(ctrl)
		clienteRepo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewLicitacaoUseCase(repo, clienteRepo)

		clienteRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Cliente{ID: "cli-1", RazaoSocial: "Acme Ltda"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.Licitacao) (entities.Licitacao, error) {
			if l.ClienteNome != "Acme Ltda" {
				t.Fatalf("expected denormalized nome, got %q", l.ClienteNome)
			}
			if l.Status != entities.LicitacaoStatusAguardandoAnalise {
				t.Fatalf("expected AGUARDANDO_ANALISE, got %s", l.Status)
			}
			if l.ID == "" || l.Checklist == nil || l.Comentarios == nil {
				t.Fatalf("expected initialized licitacao, got %+v", l)
			}
			return l, nil
		})

		_, err := uc.Create(context.Background(), entities.Licitacao{
			ClienteID:    "cli-1",
			Numero:       "PE-01/2026",
			DataInicio:   now,
			PrazoAnalise: now.Add(48 * time.Hour),
			Status:       entities.LicitacaoStatusHomologada, // caller-picked status is ignored
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLicitacaoUseCase_Update(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("invalid id", func(t *testing.T) {
		uc := NewLicitacaoUseCase(nil, nil)
		_, err := uc.Update(context.Background(), " ", entities.LicitacaoUpdate{})
		if !errors.Is(err, ErrInvalidLicitacaoID) {
			t.Fatalf("expected ErrInvalidLicitacaoID, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewLicitacaoUseCase(nil, nil)
		bad := entities.LicitacaoStatus("GANHA")
		_, err := uc.Update(context.Background(), "lic-1", entities.LicitacaoUpdate{Status: &bad})
		if !errors.Is(err, ErrInvalidLicitacaoStatus) {
			t.Fatalf("expected ErrInvalidLicitacaoStatus, got %v", err)
		}
	})

	t.Run("cliente change re-resolves nome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILicitacaoRepository(ctrl)
		clienteRepo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewLicitacaoUseCase(repo, clienteRepo)

		clienteRepo.EXPECT().GetByID(gomock.Any(), "cli-2").Return(entities.Cliente{ID: "cli-2", RazaoSocial: "Beta SA"}, nil)
		repo.EXPECT().Update(gomock.Any(), "lic-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, upd entities.LicitacaoUpdate) (entities.Licitacao, error) {
			if upd.ClienteNome == nil || *upd.ClienteNome != "Beta SA" {
				t.Fatalf("expected re-resolved cliente nome, got %+v", upd.ClienteNome)
			}
			return entities.Licitacao{ID: "lic-1", ClienteID: "cli-2", ClienteNome: "Beta SA"}, nil
		})

		_, err := uc.Update(context.Background(), "lic-1", entities.LicitacaoUpdate{ClienteID: str("cli-2")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cliente change to missing cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clienteRepo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewLicitacaoUseCase(nil, clienteRepo)

		clienteRepo.EXPECT().GetByID(gomock.Any(), "cli-9").Return(entities.Cliente{}, nil)

		_, err := uc.Update(context.Background(), "lic-1", entities.LicitacaoUpdate{ClienteID: str("cli-9")})
		if !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILicitacaoRepository(ctrl)
		uc := NewLicitacaoUseCase(repo, nil)

		repo.EXPECT().Update(gomock.Any(), "lic-1", gomock.Any()).Return(entities.Licitacao{}, nil)

		_, err := uc.Update(context.Background(), "lic-1", entities.LicitacaoUpdate{Numero: str("PE-02/2026")})
		if !errors.Is(err, ErrLicitacaoNotFound) {
			t.Fatalf("expected ErrLicitacaoNotFound, got %v", err)
		}
	})
}

func TestLicitacaoUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILicitacaoRepository(ctrl)
		uc := NewLicitacaoUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "lic-1").Return(entities.Licitacao{}, nil)

		_, err := uc.GetByID(context.Background(), "lic-1")
		if !errors.Is(err, ErrLicitacaoNotFound) {
			t.Fatalf("expected ErrLicitacaoNotFound, got %v", err)
		}
	})

	t.Run("repo error passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILicitacaoRepository(ctrl)
		uc := NewLicitacaoUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "lic-1").Return(entities.Licitacao{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "lic-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
