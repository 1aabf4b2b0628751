package usecase

import (
	"context"
	"errors"
	"testing"

	"bizportal/internal/domain/entities"
	mock_interfaces "bizportal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func catalogProducts() []entities.Product {
	return []entities.Product{
		{ID: "1", Title: "Cisco Meraki MX68", Category: "Security", Price: 430},
		{ID: "2", Title: "Microsoft 365 Business Standard", Category: "Software", Price: 9.6},
		{ID: "6", Title: "Business Fibre 900", Category: "Broadband", Price: 49.99},
	}
}

func TestCatalogUseCase_List(t *testing.T) {
	t.Run("invalid category", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.List(context.Background(), "Furniture")
		if !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("all categories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogProvider(ctrl)
		uc := NewCatalogUseCase(catalog)

		catalog.EXPECT().Products(gomock.Any()).Return(catalogProducts(), nil).Times(2)

		for _, category := range []string{"", "All"} {
			res, err := uc.List(context.Background(), category)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res) != 3 {
				t.Fatalf("expected 3 products, got %d", len(res))
			}
		}
	})

	t.Run("filter by category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogProvider(ctrl)
		uc := NewCatalogUseCase(catalog)

		catalog.EXPECT().Products(gomock.Any()).Return(catalogProducts(), nil)

		res, err := uc.List(context.Background(), "broadband")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "6" {
			t.Fatalf("unexpected products: %+v", res)
		}
	})

	t.Run("provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogProvider(ctrl)
		uc := NewCatalogUseCase(catalog)

		catalog.EXPECT().Products(gomock.Any()).Return(nil, errors.New("catalog"))

		if _, err := uc.List(context.Background(), "Cloud"); err == nil || err.Error() != "catalog" {
			t.Fatalf("expected catalog error, got %v", err)
		}
	})
}

func TestCatalogUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogProvider(ctrl)
		uc := NewCatalogUseCase(catalog)

		catalog.EXPECT().Products(gomock.Any()).Return(catalogProducts(), nil)

		if _, err := uc.GetByID(context.Background(), "99"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogProvider(ctrl)
		uc := NewCatalogUseCase(catalog)

		catalog.EXPECT().Products(gomock.Any()).Return(catalogProducts(), nil)

		p, err := uc.GetByID(context.Background(), "2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Title != "Microsoft 365 Business Standard" {
			t.Fatalf("unexpected product: %+v", p)
		}
	})
}

func TestCatalogUseCase_QuoteAmount(t *testing.T) {
	t.Run("invalid quantity", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		if _, _, err := uc.QuoteAmount(context.Background(), "1", 0); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("price times quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogProvider(ctrl)
		uc := NewCatalogUseCase(catalog)

		catalog.EXPECT().Products(gomock.Any()).Return(catalogProducts(), nil)

		p, amount, err := uc.QuoteAmount(context.Background(), "2", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "2" || amount != 96 {
			t.Fatalf("unexpected result: %s %v", p.ID, amount)
		}
	})
}
