package interfaces

import (
	"bizportal/internal/domain/entities"
	"context"
)

// ICatalogProvider is the static, read-only product list quotes refer to.
type ICatalogProvider interface {
	Products(ctx context.Context) ([]entities.Product, error)
}
