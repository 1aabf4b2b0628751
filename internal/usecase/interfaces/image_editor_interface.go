package interfaces

import "context"

// IImageEditor abstracts the external generative image service.
//
// It receives an image plus a text instruction and returns the edited image
// with its MIME type. It never touches lifecycle state.
type IImageEditor interface {
	EditImage(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, string, error)
}
