package entities

import "time"

// Documento is a compliance artifact tied to a Cliente (certidões, atestados).
//
// Same denormalization contract as Licitacao: ClienteNome reflects the
// referenced Cliente at last write time.
type Documento struct {
	ID          string
	ClienteID   string
	ClienteNome string
	Tipo        string
	Validade    *time.Time
	CreatedAt   time.Time
}

// DocumentoUpdate is a partial field set for merge-style updates.
type DocumentoUpdate struct {
	ClienteID   *string
	ClienteNome *string
	Tipo        *string
	Validade    *time.Time
}
