package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizportal/internal/adapter/http/handlers/mocks"
	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLifecycleRouter(h *LifecycleHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.GET("/v1/invoices", h.ListInvoices)
	r.GET("/v1/invoices/:id", h.GetInvoice)
	r.GET("/v1/invoices/:id/pdf", h.DownloadInvoicePDF)
	r.POST("/v1/lifecycle/tick", h.Tick)
	r.GET("/v1/lifecycle/snapshot", h.Snapshot)
	return r
}

func TestLifecycleHandler_Orders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get order with stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(lifecycle, nil)

		lifecycle.EXPECT().GetOrder(gomock.Any(), "ORD-1").Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusInProgress, TrackingStage: 4}, nil)

		w := doJSON(newLifecycleRouter(h), http.MethodGet, "/v1/orders/ORD-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Stage struct {
				Title string `json:"title"`
			} `json:"stage"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Stage.Title != "Procurement" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(lifecycle, nil)

		lifecycle.EXPECT().GetOrder(gomock.Any(), "ORD-404").Return(entities.Order{}, usecase.ErrOrderNotFound)

		w := doJSON(newLifecycleRouter(h), http.MethodGet, "/v1/orders/ORD-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(lifecycle, nil)

		lifecycle.EXPECT().ListOrders(gomock.Any()).Return([]entities.Order{{ID: "ORD-2"}, {ID: "ORD-1"}}, nil)

		w := doJSON(newLifecycleRouter(h), http.MethodGet, "/v1/orders", "")
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 2 || body[0]["id"] != "ORD-2" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestLifecycleHandler_Invoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(lifecycle, nil)

		lifecycle.EXPECT().GetInvoice(gomock.Any(), "INV-1").Return(entities.Invoice{ID: "INV-1", Total: 120}, nil)

		w := doJSON(newLifecycleRouter(h), http.MethodGet, "/v1/invoices/INV-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(lifecycle, nil)

		lifecycle.EXPECT().GetInvoice(gomock.Any(), "INV-404").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		w := doJSON(newLifecycleRouter(h), http.MethodGet, "/v1/invoices/INV-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("pdf download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		documents := mocks.NewMockIInvoiceDocumentUseCase(ctrl)
		h := NewLifecycleHandler(nil, documents)

		documents.EXPECT().RenderPDF(gomock.Any(), "INV-1").Return(entities.Invoice{ID: "INV-1"}, []byte("%PDF-1.3"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/INV-1/pdf", nil)
		w := httptest.NewRecorder()
		newLifecycleRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=INV-1.pdf" {
			t.Fatalf("unexpected disposition %q", cd)
		}
	})

	t.Run("pdf render failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		documents := mocks.NewMockIInvoiceDocumentUseCase(ctrl)
		h := NewLifecycleHandler(nil, documents)

		documents.EXPECT().RenderPDF(gomock.Any(), "INV-1").Return(entities.Invoice{}, nil, errors.New("font"))

		w := doJSON(newLifecycleRouter(h), http.MethodGet, "/v1/invoices/INV-1/pdf", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestLifecycleHandler_Simulation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("tick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(lifecycle, nil)

		lifecycle.EXPECT().Tick(gomock.Any()).Return(usecase.TickReport{
			Advanced:  []string{"ORD-1"},
			Delivered: []string{"ORD-1"},
			Invoiced:  []entities.Invoice{{ID: "INV-9", OrderID: "ORD-1"}},
		}, nil)

		w := doJSON(newLifecycleRouter(h), http.MethodPost, "/v1/lifecycle/tick", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Invoiced []struct {
				ID string `json:"id"`
			} `json:"invoiced"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Invoiced) != 1 || body.Invoiced[0].ID != "INV-9" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(lifecycle, nil)

		lifecycle.EXPECT().Snapshot(gomock.Any()).Return(usecase.Snapshot{Quotes: []entities.Quote{{ID: "QT-1"}}}, nil)

		w := doJSON(newLifecycleRouter(h), http.MethodGet, "/v1/lifecycle/snapshot", "")
		var body struct {
			Quotes []any `json:"quotes"`
			Orders []any `json:"orders"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body.Quotes) != 1 || body.Orders == nil {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}
