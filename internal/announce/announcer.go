// ABOUTME: Generative announcement drafting via the Gemini API
// ABOUTME: Failures always degrade to a displayable Spanish fallback string, never an error

package announce

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemInstruction = "You are a helpful assistant for a neighborhood community app called " +
	"'Rinconada de Ceibas'. Your tone should be friendly, clear, and concise. " +
	"Format your response as a community announcement."

// Fallback strings shown to the user when generation is unavailable.
// These are displayable content, not errors: the caller renders them as-is.
const (
	errorFallback      = "Hubo un error al generar el anuncio. Por favor, inténtalo de nuevo."
	unconfiguredNotice = "Error: la generación de anuncios no está configurada."
)

// Announcer drafts community announcements from a topic prompt. Generate
// never fails: any problem resolves to a displayable fallback string.
type Announcer interface {
	Generate(ctx context.Context, topic string) string
}

// Gemini is the Announcer backed by the Gemini generative API
type Gemini struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGemini creates a Gemini announcer. Returns an error only for client
// construction failure; generation errors are absorbed by Generate.
func NewGemini(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Gemini, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &Gemini{
		client: client,
		model:  model,
		logger: logger.With("component", "announce"),
	}, nil
}

// Generate drafts an announcement about the given topic. On any failure
// it returns the fixed Spanish fallback instead of an error.
func (g *Gemini) Generate(ctx context.Context, topic string) string {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(Prompt(topic)))
	if err != nil {
		g.logger.Warn("announcement generation failed", "error", err)
		return errorFallback
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		g.logger.Warn("announcement generation returned no candidates")
		return errorFallback
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	if text.Len() == 0 {
		g.logger.Warn("announcement generation returned no text parts")
		return errorFallback
	}
	return text.String()
}

// Close releases the underlying API client
func (g *Gemini) Close() error {
	return g.client.Close()
}

// Prompt wraps a raw topic into the announcement request sent to the model
func Prompt(topic string) string {
	return "Crea un anuncio para la comunidad sobre: " + topic
}

// Disabled is the Announcer used when no API key is configured. It
// always returns the configuration notice.
type Disabled struct{}

// Generate returns the fixed not-configured notice
func (Disabled) Generate(context.Context, string) string {
	return unconfiguredNotice
}
