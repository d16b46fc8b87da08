package entities

// ConsultaContratacoes holds the typed filters forwarded to the PNCP
// contratações/publicação endpoint. Dates use the AAAAMMDD format PNCP expects.
type ConsultaContratacoes struct {
	DataInicial      string
	DataFinal        string
	CodigoModalidade int
	UF               string
	Pagina           int
	TamanhoPagina    int
}

// ConsultaContratos holds the typed filters forwarded to the PNCP contratos
// endpoint.
type ConsultaContratos struct {
	DataInicial   string
	DataFinal     string
	CNPJOrgao     string
	Pagina        int
	TamanhoPagina int
}

// RespostaProxy is an upstream response passed through unmodified, including
// error payloads and unparsable bodies.
type RespostaProxy struct {
	StatusCode  int
	ContentType string
	Body        []byte
}
