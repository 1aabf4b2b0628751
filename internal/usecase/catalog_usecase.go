package usecase

import (
	"context"
	"errors"
	"strings"

	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase/interfaces"
	"bizportal/pkg/money"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCategory = errors.New("invalid product category")
)

// CategoryAll disables the category filter.
const CategoryAll = "All"

// ProductCategories lists the catalog filters in display order.
var ProductCategories = []string{"Broadband", "Hardware", "Software", "Security", "Cloud"}

type ICatalogUseCase interface {
	List(ctx context.Context, category string) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	QuoteAmount(ctx context.Context, productID string, quantity int) (entities.Product, float64, error)
}

type CatalogUseCase struct {
	catalog interfaces.ICatalogProvider
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogProvider) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

func (u *CatalogUseCase) List(ctx context.Context, category string) ([]entities.Product, error) {
	category = strings.TrimSpace(category)
	if category != "" && !strings.EqualFold(category, CategoryAll) && !knownCategory(category) {
		return nil, ErrInvalidCategory
	}

	products, err := u.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return products, nil
	}

	out := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	products, err := u.catalog.Products(ctx)
	if err != nil {
		return entities.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.Product{}, ErrProductNotFound
}

// QuoteAmount prices a quote request at list price times quantity.
func (u *CatalogUseCase) QuoteAmount(ctx context.Context, productID string, quantity int) (entities.Product, float64, error) {
	if quantity < 1 {
		return entities.Product{}, 0, ErrInvalidQuantity
	}
	p, err := u.GetByID(ctx, productID)
	if err != nil {
		return entities.Product{}, 0, err
	}
	return p, money.Mul(p.Price, quantity), nil
}

func knownCategory(category string) bool {
	for _, c := range ProductCategories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}
