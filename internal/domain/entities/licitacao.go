package entities

import "time"

// LicitacaoStatus tracks a bid through analysis, dispute and award stages.
// New licitações always start in AGUARDANDO_ANALISE.
type LicitacaoStatus string

const (
	LicitacaoStatusAguardandoAnalise LicitacaoStatus = "AGUARDANDO_ANALISE"
	LicitacaoStatusEmAnalise         LicitacaoStatus = "EM_ANALISE"
	LicitacaoStatusEmDisputa         LicitacaoStatus = "EM_DISPUTA"
	LicitacaoStatusHomologada        LicitacaoStatus = "HOMOLOGADA"
	LicitacaoStatusPerdida           LicitacaoStatus = "PERDIDA"
	LicitacaoStatusCancelada         LicitacaoStatus = "CANCELADA"
)

func (s LicitacaoStatus) Valid() bool {
	switch s {
	case LicitacaoStatusAguardandoAnalise, LicitacaoStatusEmAnalise, LicitacaoStatusEmDisputa,
		LicitacaoStatusHomologada, LicitacaoStatusPerdida, LicitacaoStatusCancelada:
		return true
	}
	return false
}

// Comentario is a free-form note attached to a licitação.
type Comentario struct {
	Autor    string
	Texto    string
	CriadoEm time.Time
}

// Licitacao is a public-procurement opportunity tracked for a Cliente.
//
// ClienteNome is denormalized from the referenced Cliente at write time and is
// not kept in sync if the Cliente is later renamed (accepted staleness).
type Licitacao struct {
	ID              string
	ClienteID       string
	ClienteNome     string
	Numero          string
	DataInicio      time.Time
	PrazoAnalise    time.Time
	DataHomologacao *time.Time
	Status          LicitacaoStatus
	Checklist       map[string]bool
	Comentarios     []Comentario
	CreatedAt       time.Time
}

// LicitacaoUpdate is a partial field set for merge-style updates.
// ClienteNome is filled by the usecase when ClienteID changes.
type LicitacaoUpdate struct {
	ClienteID       *string
	ClienteNome     *string
	Numero          *string
	DataInicio      *time.Time
	PrazoAnalise    *time.Time
	DataHomologacao *time.Time
	Status          *LicitacaoStatus
	Checklist       map[string]bool
	Comentarios     []Comentario
}
