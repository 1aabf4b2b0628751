package imageeditor

import (
	"context"
	"errors"
	"fmt"

	"bizportal/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

var (
	ErrMissingGeminiAPIKey      = errors.New("missing GEMINI_API_KEY")
	ErrImageEditorNotConfigured = errors.New("image editor not configured")
	ErrNoImageReturned          = errors.New("the model did not return an image")
)

const DefaultModel = "gemini-2.5-flash-image"

const promptTemplate = "Please edit this image based on the following instruction: %s. Return the modified image."

type Config struct {
	APIKey string
	Model  string
	Mock   bool
}

// contentGenerator is the part of the genai client the gateway calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGateway edits images through the Gemini API, or locally when mock
// mode is on or no API key is configured.
type GeminiGateway struct {
	models   contentGenerator
	model    string
	mockMode bool
}

var _ interfaces.IImageEditor = (*GeminiGateway)(nil)

func NewGeminiGateway(ctx context.Context, cfg Config) (*GeminiGateway, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	if cfg.Mock || cfg.APIKey == "" {
		log.Info().Bool("requested", cfg.Mock).Msg("image gateway: mock mode enabled")
		return &GeminiGateway{model: model, mockMode: true}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Error().Err(err).Msg("image gateway: failed creating genai client")
		return nil, err
	}
	log.Info().Str("model", model).Msg("image gateway: Gemini client initialized")

	return &GeminiGateway{models: client.Models, model: model}, nil
}

func (g *GeminiGateway) EditImage(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, string, error) {
	if g != nil && g.mockMode {
		log.Debug().Int("bytes", len(image)).Msg("image gateway: mock edit start")
		out, err := mockEdit(image, instruction)
		if err != nil {
			return nil, "", err
		}
		return out, pngMimeType, nil
	}

	if g == nil || g.models == nil {
		return nil, "", ErrImageEditorNotConfigured
	}

	normalized, err := normalize(image)
	if err != nil {
		return nil, "", err
	}
	log.Debug().Str("model", g.model).Int("bytes", len(normalized)).Str("source_mime_type", mimeType).Msg("image gateway: edit start")

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(normalized, pngMimeType),
			genai.NewPartFromText(fmt.Sprintf(promptTemplate, instruction)),
		}, genai.RoleUser),
	}
	resp, err := g.models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		log.Error().Err(err).Str("model", g.model).Msg("image gateway: generate content failed")
		return nil, "", err
	}

	data, outType, ok := firstInlineImage(resp)
	if !ok {
		return nil, "", ErrNoImageReturned
	}
	log.Info().Str("model", g.model).Int("bytes", len(data)).Msg("image gateway: edit success")
	return data, outType, nil
}

func firstInlineImage(resp *genai.GenerateContentResponse) ([]byte, string, bool) {
	if resp == nil {
		return nil, "", false
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mimeType := part.InlineData.MIMEType
			if mimeType == "" {
				mimeType = pngMimeType
			}
			return part.InlineData.Data, mimeType, true
		}
	}
	return nil, "", false
}
