package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bizportal/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidImage       = errors.New("invalid image")
	ErrInvalidInstruction = errors.New("edit instruction is required")
	ErrImageEditFailed    = errors.New("image service failed")
)

// MaxImageBytes bounds uploads sent to the image service.
const MaxImageBytes = 8 << 20

var supportedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

type EditedImage struct {
	Data     []byte
	MimeType string
}

type IImageEditUseCase interface {
	Edit(ctx context.Context, image []byte, instruction string) (EditedImage, error)
}

// ImageEditUseCase forwards product images to the generative image service.
// It is independent from the lifecycle: a failed edit changes nothing.
type ImageEditUseCase struct {
	editor interfaces.IImageEditor
}

var _ IImageEditUseCase = (*ImageEditUseCase)(nil)

func NewImageEditUseCase(editor interfaces.IImageEditor) *ImageEditUseCase {
	return &ImageEditUseCase{editor: editor}
}

func (u *ImageEditUseCase) Edit(ctx context.Context, image []byte, instruction string) (EditedImage, error) {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return EditedImage{}, ErrInvalidInstruction
	}
	if len(image) == 0 || len(image) > MaxImageBytes {
		return EditedImage{}, ErrInvalidImage
	}
	mimeType := http.DetectContentType(image)
	if !supportedImageTypes[mimeType] {
		return EditedImage{}, fmt.Errorf("%w: unsupported type %s", ErrInvalidImage, mimeType)
	}

	out, outType, err := u.editor.EditImage(ctx, image, mimeType, instruction)
	if err != nil {
		log.Warn().Err(err).Int("bytes", len(image)).Msg("image: edit failed")
		return EditedImage{}, fmt.Errorf("%w: %w", ErrImageEditFailed, err)
	}
	log.Info().Int("bytes_in", len(image)).Int("bytes_out", len(out)).Str("mime_type", outType).Msg("image: edited")
	return EditedImage{Data: out, MimeType: outType}, nil
}
