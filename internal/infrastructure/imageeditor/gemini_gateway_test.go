package imageeditor

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp     *genai.GenerateContentResponse
	err      error
	model    string
	contents []*genai.Content
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	return f.resp, f.err
}

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestNewGeminiGateway_MockWithoutKey(t *testing.T) {
	g, err := NewGeminiGateway(context.Background(), Config{})
	require.NoError(t, err)
	assert.True(t, g.mockMode)
	assert.Equal(t, DefaultModel, g.model)
}

func TestGeminiGateway_MockEdit(t *testing.T) {
	g := &GeminiGateway{mockMode: true}

	out, mimeType, err := g.EditImage(context.Background(), testJPEG(t, 1600, 800), "image/jpeg", "make it black and white")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1024, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())

	r, gr, b, _ := img.At(10, 10).RGBA()
	assert.Equal(t, r, gr)
	assert.Equal(t, gr, b)

	_, _, err = g.EditImage(context.Background(), []byte("not an image"), "image/png", "blur")
	assert.ErrorIs(t, err, ErrUndecodableImage)
}

func TestGeminiGateway_EditImage(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		var g *GeminiGateway
		_, _, err := g.EditImage(ctx, testJPEG(t, 4, 4), "image/jpeg", "x")
		assert.ErrorIs(t, err, ErrImageEditorNotConfigured)
	})

	t.Run("sends normalized image and prompt", func(t *testing.T) {
		models := &fakeModels{resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "here you go"},
				{InlineData: &genai.Blob{Data: []byte("edited"), MIMEType: "image/webp"}},
			}}}},
		}}
		g := &GeminiGateway{models: models, model: "test-model"}

		out, mimeType, err := g.EditImage(ctx, testJPEG(t, 8, 8), "image/jpeg", "add a red ribbon")
		require.NoError(t, err)
		assert.Equal(t, "edited", string(out))
		assert.Equal(t, "image/webp", mimeType)

		assert.Equal(t, "test-model", models.model)
		require.Len(t, models.contents, 1)
		parts := models.contents[0].Parts
		require.Len(t, parts, 2)
		assert.Equal(t, "image/png", parts[0].InlineData.MIMEType)
		assert.True(t, strings.HasPrefix(parts[1].Text, "Please edit this image based on the following instruction: add a red ribbon."))
	})

	t.Run("no image in response", func(t *testing.T) {
		models := &fakeModels{resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "sorry"}}}}},
		}}
		g := &GeminiGateway{models: models, model: DefaultModel}

		_, _, err := g.EditImage(ctx, testJPEG(t, 8, 8), "image/jpeg", "x")
		assert.ErrorIs(t, err, ErrNoImageReturned)
	})

	t.Run("api error", func(t *testing.T) {
		g := &GeminiGateway{models: &fakeModels{err: errors.New("quota exceeded")}, model: DefaultModel}
		_, _, err := g.EditImage(ctx, testJPEG(t, 8, 8), "image/jpeg", "x")
		require.EqualError(t, err, "quota exceeded")
	})
}
