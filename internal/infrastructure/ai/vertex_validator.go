package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"licitax_advisor/internal/domain/entities"
	"licitax_advisor/internal/usecase/interfaces"
)

const defaultModel = "gemini-1.5-pro"

const validatorSystemPrompt = `Voce e um analista de conformidade documental para licitacoes publicas brasileiras.
Recebera um conjunto de documentos e os criterios de habilitacao exigidos pelo edital.
Avalie cada documento quanto a validade e verifique se o conjunto cobre todos os criterios.
Responda APENAS com um objeto JSON no formato:
{"completo": bool, "validade": {"<nome do documento>": bool}, "faltantes": ["<criterio nao atendido>"]}`

// VertexValidator checks a document set against edital criteria using a
// Gemini model on Vertex AI configured for deterministic JSON output.
type VertexValidator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

var _ interfaces.IDocumentValidator = (*VertexValidator)(nil)

// NewVertexValidator requires GOOGLE_CLOUD_PROJECT (or GCLOUD_PROJECT) and
// uses GCP_REGION (default us-central1) and VERTEX_MODEL (default gemini-1.5-pro).
func NewVertexValidator(ctx context.Context) (*VertexValidator, error) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT")
	}
	if projectID == "" {
		return nil, errors.New("GOOGLE_CLOUD_PROJECT is not set")
	}
	region := os.Getenv("GCP_REGION")
	if region == "" {
		region = "us-central1"
	}

	client, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	modelName := os.Getenv("VERTEX_MODEL")
	if modelName == "" {
		modelName = defaultModel
	}
	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(validatorSystemPrompt)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.0),
	}
	log.Printf("[validacao][vertex] client initialized project=%s region=%s model=%s", projectID, region, modelName)

	return &VertexValidator{client: client, model: model}, nil
}

func (v *VertexValidator) Validate(ctx context.Context, documentos []entities.DocumentoParaValidacao, criterios string) (entities.ResultadoValidacao, error) {
	parts := buildParts(documentos, criterios)

	resp, err := v.model.GenerateContent(ctx, parts...)
	if err != nil {
		log.Printf("[validacao][vertex] generate failed err=%v", err)
		return entities.ResultadoValidacao{}, fmt.Errorf("vertex generate: %w", err)
	}

	raw := extractJSONContent(resp)
	if raw == "" {
		return entities.ResultadoValidacao{}, errors.New("vertex returned an empty response")
	}

	var verdict struct {
		Completo  bool            `json:"completo"`
		Validade  map[string]bool `json:"validade"`
		Faltantes []string        `json:"faltantes"`
	}
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		log.Printf("[validacao][vertex] verdict unmarshal failed err=%v body=%s", err, raw)
		return entities.ResultadoValidacao{}, fmt.Errorf("vertex verdict parse: %w", err)
	}
	log.Printf("[validacao][vertex] verdict completo=%t documentos=%d faltantes=%d", verdict.Completo, len(verdict.Validade), len(verdict.Faltantes))

	return entities.ResultadoValidacao{
		Completo:  verdict.Completo,
		Validade:  verdict.Validade,
		Faltantes: verdict.Faltantes,
	}, nil
}

func (v *VertexValidator) Close() error {
	return v.client.Close()
}

func buildParts(documentos []entities.DocumentoParaValidacao, criterios string) []genai.Part {
	parts := make([]genai.Part, 0, len(documentos)*2+1)
	for _, d := range documentos {
		mime := d.MimeType
		if mime == "" {
			mime = "application/pdf"
		}
		parts = append(parts, genai.Text(fmt.Sprintf("Documento: %s", d.Nome)))
		if d.GCSUri != "" {
			parts = append(parts, genai.FileData{MIMEType: mime, FileURI: d.GCSUri})
		} else {
			parts = append(parts, genai.Blob{MIMEType: mime, Data: d.Conteudo})
		}
	}
	parts = append(parts, genai.Text(fmt.Sprintf("Criterios de habilitacao:\n%s", criterios)))
	return parts
}

// extractJSONContent gets the raw text from the model response, stripping
// markdown fences the model sometimes adds despite the JSON response mode.
func extractJSONContent(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	if txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
		clean := strings.TrimSpace(string(txt))
		clean = strings.TrimPrefix(clean, "```json")
		clean = strings.TrimSuffix(clean, "```")
		return strings.TrimSpace(clean)
	}
	return ""
}
