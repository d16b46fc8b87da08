package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing access token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		_, err := NewMercadoPagoGateway("")
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		g, err := NewMercadoPagoGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestMercadoPagoGateway_CreatePayment_Mock(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "mock")
	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, status, resp, err := g.CreatePayment(context.Background(), json.RawMessage(`{"payment_method_id":"pix","transaction_amount":150.5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" || status != "approved" {
		t.Fatalf("unexpected result id=%q status=%q", id, status)
	}

	var m map[string]any
	if err := json.Unmarshal(resp, &m); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if m["status"] != "approved" || m["status_detail"] != "accredited" {
		t.Fatalf("unexpected response: %v", m)
	}
	if m["payment_method_id"] != "pix" {
		t.Fatalf("expected request payload echoed, got %v", m)
	}
}
