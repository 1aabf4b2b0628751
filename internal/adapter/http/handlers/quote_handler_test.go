package handlers

import (
	"bytes"
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

func newQuoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/quotes", h.ListQuotes)
	r.POST("/v1/quotes", h.SubmitQuote)
	r.POST("/v1/quotes/:id/approve", h.ApproveQuote)
	r.POST("/v1/quotes/:id/decline", h.DeclineQuote)
	r.POST("/v1/quotes/:id/negotiate", h.NegotiateQuote)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_SubmitQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockILifecycleUseCase(ctrl), mocks.NewMockICatalogUseCase(ctrl))

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockILifecycleUseCase(ctrl), catalog)

		catalog.EXPECT().QuoteAmount(gomock.Any(), "99", 1).Return(entities.Product{}, 0.0, usecase.ErrProductNotFound)

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes", `{"product_id":"99"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("amount defaults to list price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewQuoteHandler(lifecycle, catalog)

		catalog.EXPECT().QuoteAmount(gomock.Any(), "1", 5).Return(entities.Product{ID: "1", Title: "Cisco Meraki MX68"}, 2150.0, nil)
		lifecycle.EXPECT().SubmitQuote(gomock.Any(), usecase.SubmitQuoteCommand{
			ProductID: "1", ProductTitle: "Cisco Meraki MX68", Quantity: 5, Amount: 2150, Notes: "bulk",
		}).Return(entities.Quote{ID: "QT-12", ProductID: "1", Status: entities.QuoteStatusInReview, Amount: 2150, Quantity: 5, LastActionBy: entities.ActorUser}, nil)

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes", `{"product_id":"1","quantity":5,"notes":"bulk"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "QT-12" || body["status"] != "In Review" || body["last_action_by"] != "user" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewQuoteHandler(lifecycle, catalog)

		catalog.EXPECT().QuoteAmount(gomock.Any(), "1", 1).Return(entities.Product{ID: "1", Title: "x"}, 430.0, nil)
		lifecycle.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidAmount)

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes", `{"product_id":"1","amount":-3}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Respond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve returns created order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewQuoteHandler(lifecycle, nil)

		lifecycle.EXPECT().RespondToQuote(gomock.Any(), "QT-1", usecase.ApproveAction()).Return(usecase.RespondResult{
			Applied: true,
			Quote:   entities.Quote{ID: "QT-1", Status: entities.QuoteStatusApproved},
			Order:   &entities.Order{ID: "ORD-55555", Status: entities.OrderStatusInProgress},
		}, nil)

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/QT-1/approve", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Order struct {
				ID string `json:"id"`
			} `json:"order"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Order.ID != "ORD-55555" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewQuoteHandler(lifecycle, nil)

		lifecycle.EXPECT().RespondToQuote(gomock.Any(), "QT-404", usecase.DeclineAction()).Return(usecase.RespondResult{}, nil)

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/QT-404/decline", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("terminal quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewQuoteHandler(lifecycle, nil)

		lifecycle.EXPECT().RespondToQuote(gomock.Any(), "QT-2", usecase.ApproveAction()).
			Return(usecase.RespondResult{Quote: entities.Quote{ID: "QT-2", Status: entities.QuoteStatusRejected}}, nil)

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/QT-2/approve", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("negotiate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewQuoteHandler(lifecycle, nil)
		target := 40.0

		lifecycle.EXPECT().RespondToQuote(gomock.Any(), "QT-3", usecase.NegotiateAction(40)).Return(usecase.RespondResult{
			Applied: true,
			Quote:   entities.Quote{ID: "QT-3", Status: entities.QuoteStatusInReview, NegotiationPrice: &target},
		}, nil)

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/QT-3/negotiate", `{"target_price":40}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("negotiate with invalid price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewQuoteHandler(lifecycle, nil)

		lifecycle.EXPECT().RespondToQuote(gomock.Any(), "QT-3", usecase.NegotiateAction(-1)).Return(usecase.RespondResult{}, usecase.ErrInvalidNegotiationPrice)

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/QT-3/negotiate", `{"target_price":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negotiate without price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockILifecycleUseCase(ctrl), nil)

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/QT-3/negotiate", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewQuoteHandler(lifecycle, nil)

		lifecycle.EXPECT().ListQuotes(gomock.Any()).Return(nil, errors.New("boom"))

		w := doJSON(newQuoteRouter(h), http.MethodGet, "/v1/quotes", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
