package entities

import "time"

// Cliente is the legal-entity registration record persisted in Firestore.
//
// Storage model (Firestore):
//   - collection: clientes
//   - doc id: generated uuid
//
// CNPJ is the business uniqueness key. Uniqueness is enforced by querying
// before writes; there is no transactional guarantee between check and write.
type Cliente struct {
	ID          string
	CNPJ        string
	RazaoSocial string
	Endereco    string
	Cidade      string
	Estado      string
	CEP         string
	CreatedAt   time.Time
}

// ClienteUpdate is a partial field set for merge-style updates.
// Nil fields are left unchanged.
type ClienteUpdate struct {
	CNPJ        *string
	RazaoSocial *string
	Endereco    *string
	Cidade      *string
	Estado      *string
	CEP         *string
}
