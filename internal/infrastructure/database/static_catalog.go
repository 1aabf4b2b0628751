package database

import (
	"context"

	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase/interfaces"
)

// StaticCatalog serves a fixed product list.
type StaticCatalog struct {
	products []entities.Product
}

var _ interfaces.ICatalogProvider = (*StaticCatalog)(nil)

func NewStaticCatalog(products []entities.Product) *StaticCatalog {
	return &StaticCatalog{products: products}
}

func (c *StaticCatalog) Products(_ context.Context) ([]entities.Product, error) {
	out := make([]entities.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p.Clone())
	}
	return out, nil
}
