package entities

// DocumentoParaValidacao is one artifact submitted to the external validator.
// Either Conteudo (inline bytes) or GCSUri must be set.
type DocumentoParaValidacao struct {
	Nome     string
	MimeType string
	Conteudo []byte
	GCSUri   string
}

// ResultadoValidacao is the structured verdict returned by the validator:
// an overall completeness flag, per-document validity, and the labels of
// required documents that were not received.
type ResultadoValidacao struct {
	Completo  bool
	Validade  map[string]bool
	Faltantes []string
}
