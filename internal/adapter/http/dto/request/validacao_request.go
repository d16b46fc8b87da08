package request

import (
	"encoding/base64"
	"fmt"

	"licitax_advisor/internal/domain/entities"
)

type DocumentoValidacaoRequest struct {
	Nome     string `json:"nome" binding:"required"`
	MimeType string `json:"mimeType"`
	Conteudo string `json:"conteudo"` // base64-encoded bytes
	GCSUri   string `json:"gcsUri"`
}

type ValidacaoRequest struct {
	Documentos []DocumentoValidacaoRequest `json:"documentos" binding:"required"`
	Criterios  string                      `json:"criterios" binding:"required"`
}

func (r ValidacaoRequest) ToEntities() ([]entities.DocumentoParaValidacao, error) {
	out := make([]entities.DocumentoParaValidacao, 0, len(r.Documentos))
	for _, d := range r.Documentos {
		doc := entities.DocumentoParaValidacao{
			Nome:     d.Nome,
			MimeType: d.MimeType,
			GCSUri:   d.GCSUri,
		}
		if d.Conteudo != "" {
			b, err := base64.StdEncoding.DecodeString(d.Conteudo)
			if err != nil {
				return nil, fmt.Errorf("documento %q: conteudo is not valid base64", d.Nome)
			}
			doc.Conteudo = b
		}
		out = append(out, doc)
	}
	return out, nil
}
