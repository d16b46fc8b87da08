package pncp

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"licitax_advisor/internal/domain/entities"
	"licitax_advisor/internal/usecase/interfaces"
)

const (
	defaultBaseURL = "https://pncp.gov.br/api/consulta"

	pathContratacoes = "/v1/contratacoes/publicacao"
	pathContratos    = "/v1/contratos"
)

// Client queries the PNCP (Portal Nacional de Contratações Públicas) open-data
// API. Responses are relayed verbatim, the upstream's own error payloads
// included, so callers see exactly what PNCP returned.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IConsultaPNCP = (*Client)(nil)

func NewClient() *Client {
	baseURL := os.Getenv("PNCP_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) ConsultarContratacoes(ctx context.Context, f entities.ConsultaContratacoes) (entities.RespostaProxy, error) {
	q := url.Values{}
	q.Set("dataInicial", f.DataInicial)
	q.Set("dataFinal", f.DataFinal)
	q.Set("codigoModalidadeContratacao", strconv.Itoa(f.CodigoModalidade))
	if f.UF != "" {
		q.Set("uf", f.UF)
	}
	q.Set("pagina", strconv.Itoa(f.Pagina))
	q.Set("tamanhoPagina", strconv.Itoa(f.TamanhoPagina))

	return c.get(ctx, pathContratacoes, q)
}

func (c *Client) ConsultarContratos(ctx context.Context, f entities.ConsultaContratos) (entities.RespostaProxy, error) {
	q := url.Values{}
	q.Set("dataInicial", f.DataInicial)
	q.Set("dataFinal", f.DataFinal)
	if f.CNPJOrgao != "" {
		q.Set("cnpjOrgao", f.CNPJOrgao)
	}
	q.Set("pagina", strconv.Itoa(f.Pagina))
	q.Set("tamanhoPagina", strconv.Itoa(f.TamanhoPagina))

	return c.get(ctx, pathContratos, q)
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (entities.RespostaProxy, error) {
	endpoint := c.baseURL + path + "?" + q.Encode()
	log.Printf("[consulta][pncp] query start path=%s", path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.RespostaProxy{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[consulta][pncp] query failed path=%s err=%v", path, err)
		return entities.RespostaProxy{}, fmt.Errorf("pncp request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[consulta][pncp] body read failed path=%s err=%v", path, err)
		return entities.RespostaProxy{}, fmt.Errorf("pncp response read failed: %w", err)
	}
	log.Printf("[consulta][pncp] query done path=%s status=%d bytes=%d", path, resp.StatusCode, len(body))

	return entities.RespostaProxy{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
