package handlers

import (
	"errors"
	"net/http"

	request "bizportal/internal/adapter/http/dto/request"
	response "bizportal/internal/adapter/http/dto/response"
	"bizportal/internal/usecase"
	"bizportal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload     = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidNegotiatePayload = pkg.NewDomainErrorSimple("INVALID_NEGOTIATION_INPUT", "Invalid negotiation payload", http.StatusBadRequest)
	errQuoteNotFound           = pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	errQuoteClosed             = pkg.NewDomainErrorSimple("QUOTE_CLOSED", "Quote is already closed", http.StatusConflict)
)

// QuoteHandler exposes the quote negotiation commands of the lifecycle engine.
type QuoteHandler struct {
	lifecycle usecase.ILifecycleUseCase
	catalog   usecase.ICatalogUseCase
}

func NewQuoteHandler(lifecycle usecase.ILifecycleUseCase, catalog usecase.ICatalogUseCase) *QuoteHandler {
	return &QuoteHandler{lifecycle: lifecycle, catalog: catalog}
}

// ListQuotes godoc
// @Summary      List quotes
// @Tags         quotes
// @Produce      json
// @Success      200  {array}   response.QuoteResponse
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.lifecycle.ListQuotes(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// SubmitQuote godoc
// @Summary      Request a quote for a catalog product
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.SubmitQuoteRequest  true  "Quote request"
// @Success      201   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	product, listAmount, err := h.catalog.QuoteAmount(ctx, payload.ResolveProductID(), payload.ResolveQuantity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.lifecycle.SubmitQuote(ctx, usecase.SubmitQuoteCommand{
		ProductID:    product.ID,
		ProductTitle: payload.ResolveTitle(product.Title),
		Quantity:     payload.ResolveQuantity(),
		Amount:       payload.ResolveAmount(listAmount),
		Notes:        payload.Notes,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// ApproveQuote godoc
// @Summary      Approve a quote and open an order
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      201  {object}  response.RespondQuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/approve [post]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.respond(c, usecase.ApproveAction(), http.StatusCreated)
}

// DeclineQuote godoc
// @Summary      Decline a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.RespondQuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/decline [post]
func (h *QuoteHandler) DeclineQuote(c *gin.Context) {
	h.respond(c, usecase.DeclineAction(), http.StatusOK)
}

// NegotiateQuote godoc
// @Summary      Counter a quote with a target price
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Quote ID"
// @Param        body  body      request.NegotiateQuoteRequest  true  "Target price"
// @Success      200   {object}  response.RespondQuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /quotes/{id}/negotiate [post]
func (h *QuoteHandler) NegotiateQuote(c *gin.Context) {
	var payload request.NegotiateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNegotiatePayload.HTTPStatus, errInvalidNegotiatePayload.ToHTTPError())
		return
	}
	h.respond(c, usecase.NegotiateAction(payload.TargetPrice), http.StatusOK)
}

func (h *QuoteHandler) respond(c *gin.Context, action usecase.QuoteAction, okStatus int) {
	res, err := h.lifecycle.RespondToQuote(c.Request.Context(), c.Param("id"), action)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !res.Applied {
		appErr := errQuoteNotFound
		if res.Quote.ID != "" {
			appErr = errQuoteClosed
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(okStatus, response.FromRespondResult(res))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteAction):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidNegotiationPrice):
		return pkg.NewDomainErrorSimple("INVALID_NEGOTIATION_PRICE", "Target price must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIDSpaceExhausted):
		return pkg.NewDomainError("ID_SPACE_EXHAUSTED", "No free identifier available", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
