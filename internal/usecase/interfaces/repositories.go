package interfaces

import (
	"context"

	"licitax_advisor/internal/domain/entities"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mock_interfaces

// Repositories return the zero-value entity (empty ID) when the target does
// not exist; usecases translate that into their NotFound sentinels.

// IClienteRepository abstracts Firestore persistence for Cliente.
type IClienteRepository interface {
	List(ctx context.Context) ([]entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	GetByCNPJ(ctx context.Context, cnpj string) (entities.Cliente, error)
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	Update(ctx context.Context, id string, upd entities.ClienteUpdate) (entities.Cliente, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ILicitacaoRepository abstracts Firestore persistence for Licitacao.
// List is ordered by dataInicio descending. Licitações are never deleted.
type ILicitacaoRepository interface {
	List(ctx context.Context) ([]entities.Licitacao, error)
	GetByID(ctx context.Context, id string) (entities.Licitacao, error)
	Create(ctx context.Context, l entities.Licitacao) (entities.Licitacao, error)
	Update(ctx context.Context, id string, upd entities.LicitacaoUpdate) (entities.Licitacao, error)
}

// IDocumentoRepository abstracts Firestore persistence for Documento.
type IDocumentoRepository interface {
	List(ctx context.Context) ([]entities.Documento, error)
	GetByID(ctx context.Context, id string) (entities.Documento, error)
	Create(ctx context.Context, d entities.Documento) (entities.Documento, error)
	Update(ctx context.Context, id string, upd entities.DocumentoUpdate) (entities.Documento, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IDebitoRepository abstracts Firestore persistence for Debito.
// Débitos are never deleted; the only mutation is the status transition.
type IDebitoRepository interface {
	List(ctx context.Context) ([]entities.Debito, error)
	GetByID(ctx context.Context, id string) (entities.Debito, error)
	Create(ctx context.Context, d entities.Debito) (entities.Debito, error)
	UpdateStatus(ctx context.Context, id string, status entities.DebitoStatus) (entities.Debito, error)
}

// IPagamentoRepository abstracts Firestore persistence for Pagamento.
type IPagamentoRepository interface {
	Create(ctx context.Context, p entities.Pagamento) (entities.Pagamento, error)
	GetByID(ctx context.Context, id string) (entities.Pagamento, error)
	ListByDebitoID(ctx context.Context, debitoID string) ([]entities.Pagamento, error)
}
