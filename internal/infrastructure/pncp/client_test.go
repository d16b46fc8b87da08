package pncp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"licitax_advisor/internal/domain/entities"
)

func TestClient_ConsultarContratacoes(t *testing.T) {
	t.Run("forwards filters and relays response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != pathContratacoes {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			q := r.URL.Query()
			if q.Get("dataInicial") != "20260101" || q.Get("dataFinal") != "20260131" {
				t.Fatalf("unexpected period: %v", q)
			}
			if q.Get("codigoModalidadeContratacao") != "6" || q.Get("uf") != "SP" {
				t.Fatalf("unexpected filters: %v", q)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"data":[],"totalRegistros":0}`))
		}))
		defer srv.Close()

		c := &Client{baseURL: srv.URL, http: srv.Client()}
		resp, err := c.ConsultarContratacoes(context.Background(), entities.ConsultaContratacoes{
			DataInicial:      "20260101",
			DataFinal:        "20260131",
			CodigoModalidade: 6,
			UF:               "SP",
			Pagina:           1,
			TamanhoPagina:    50,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusOK || resp.ContentType != "application/json" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if string(resp.Body) != `{"data":[],"totalRegistros":0}` {
			t.Fatalf("unexpected body: %s", resp.Body)
		}
	})

	t.Run("upstream errors are relayed not translated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"data invalida"}`))
		}))
		defer srv.Close()

		c := &Client{baseURL: srv.URL, http: srv.Client()}
		resp, err := c.ConsultarContratacoes(context.Background(), entities.ConsultaContratacoes{DataInicial: "x", DataFinal: "y", Pagina: 1, TamanhoPagina: 50})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("expected relayed 422, got %d", resp.StatusCode)
		}
	})

	t.Run("unreachable upstream returns error", func(t *testing.T) {
		c := &Client{baseURL: "http://127.0.0.1:1", http: http.DefaultClient}
		_, err := c.ConsultarContratacoes(context.Background(), entities.ConsultaContratacoes{DataInicial: "20260101", DataFinal: "20260131", Pagina: 1, TamanhoPagina: 50})
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestClient_ConsultarContratos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != pathContratos {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("cnpjOrgao"); got != "00000000000191" {
			t.Fatalf("unexpected cnpjOrgao %q", got)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := &Client{baseURL: srv.URL, http: srv.Client()}
	resp, err := c.ConsultarContratos(context.Background(), entities.ConsultaContratos{
		DataInicial:   "20260101",
		DataFinal:     "20260131",
		CNPJOrgao:     "00000000000191",
		Pagina:        1,
		TamanhoPagina: 50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}
