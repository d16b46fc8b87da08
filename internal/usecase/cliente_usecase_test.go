package usecase

import (
	"context"
	"errors"
	"testing"

	"licitax_advisor/internal/domain/entities"
	mock_interfaces "licitax_advisor/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClienteUseCase_Create(t *testing.T) {
	t.Run("missing cnpj", func(t *testing.T) {
		uc := NewClienteUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Cliente{RazaoSocial: "Acme"})
		if !errors.Is(err, ErrInvalidClienteInput) {
			t.Fatalf("expected ErrInvalidClienteInput, got %v", err)
		}
	})

	t.Run("missing razao social", func(t *testing.T) {
		uc := NewClienteUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Cliente{CNPJ: "11222333000181", RazaoSocial: "   "})
		if !errors.Is(err, ErrInvalidClienteInput) {
			t.Fatalf("expected ErrInvalidClienteInput, got %v", err)
		}
	})

	t.Run("cnpj already in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().GetByCNPJ(gomock.Any(), "11222333000181").Return(entities.Cliente{ID: "cli-1"}, nil)

		_, err := uc.Create(context.Background(), entities.Cliente{CNPJ: "11222333000181", RazaoSocial: "Acme"})
		if !errors.Is(err, ErrClienteCNPJEmUso) {
			t.Fatalf("expected ErrClienteCNPJEmUso, got %v", err)
		}
	})

	t.Run("cnpj lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().GetByCNPJ(gomock.Any(), "11222333000181").Return(entities.Cliente{}, errors.New("db"))

		_, err := uc.Create(context.Background(), entities.Cliente{CNPJ: "11222333000181", RazaoSocial: "Acme"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success assigns id and created at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().GetByCNPJ(gomock.Any(), "11222333000181").Return(entities.Cliente{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Cliente) (entities.Cliente, error) {
			if c.ID == "" {
				t.Fatalf("expected generated id")
			}
			if c.CreatedAt.IsZero() {
				t.Fatalf("expected created at")
			}
			return c, nil
		})

		created, err := uc.Create(context.Background(), entities.Cliente{CNPJ: " 11222333000181 ", RazaoSocial: "Acme"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.CNPJ != "11222333000181" {
			t.Fatalf("expected trimmed cnpj, got %q", created.CNPJ)
		}
	})
}

func TestClienteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClienteUseCase(nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidClienteID) {
			t.Fatalf("expected ErrInvalidClienteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Cliente{}, nil)

		_, err := uc.GetByID(context.Background(), "cli-1")
		if !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Cliente{ID: "cli-1", RazaoSocial: "Acme"}, nil)

		c, err := uc.GetByID(context.Background(), "cli-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.RazaoSocial != "Acme" {
			t.Fatalf("unexpected cliente: %+v", c)
		}
	})
}

func TestClienteUseCase_Update(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("invalid id", func(t *testing.T) {
		uc := NewClienteUseCase(nil)
		_, err := uc.Update(context.Background(), "  ", entities.ClienteUpdate{})
		if !errors.Is(err, ErrInvalidClienteID) {
			t.Fatalf("expected ErrInvalidClienteID, got %v", err)
		}
	})

	t.Run("empty cnpj", func(t *testing.T) {
		uc := NewClienteUseCase(nil)
		_, err := uc.Update(context.Background(), "cli-1", entities.ClienteUpdate{CNPJ: str("  ")})
		if !errors.Is(err, ErrInvalidClienteInput) {
			t.Fatalf("expected ErrInvalidClienteInput, got %v", err)
		}
	})

	t.Run("cnpj used by another cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().GetByCNPJ(gomock.Any(), "11222333000181").Return(entities.Cliente{ID: "cli-2"}, nil)

		_, err := uc.Update(context.Background(), "cli-1", entities.ClienteUpdate{CNPJ: str("11222333000181")})
		if !errors.Is(err, ErrClienteCNPJEmUso) {
			t.Fatalf("expected ErrClienteCNPJEmUso, got %v", err)
		}
	})

	t.Run("cnpj kept by same cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().GetByCNPJ(gomock.Any(), "11222333000181").Return(entities.Cliente{ID: "cli-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), "cli-1", gomock.Any()).Return(entities.Cliente{ID: "cli-1", CNPJ: "11222333000181"}, nil)

		_, err := uc.Update(context.Background(), "cli-1", entities.ClienteUpdate{CNPJ: str("11222333000181")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), "cli-1", gomock.Any()).Return(entities.Cliente{}, nil)

		_, err := uc.Update(context.Background(), "cli-1", entities.ClienteUpdate{Endereco: str("Rua A")})
		if !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})
}

func TestClienteUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClienteUseCase(nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidClienteID) {
			t.Fatalf("expected ErrInvalidClienteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "cli-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "cli-1"); !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "cli-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "cli-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
