package handlers

import (
	"errors"
	"net/http"

	"bizportal/internal/adapter/http/dto/response"
	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase"
	"bizportal/pkg"

	"github.com/gin-gonic/gin"
)

// LifecycleHandler serves orders, invoices and the simulation controls.
type LifecycleHandler struct {
	lifecycle usecase.ILifecycleUseCase
	documents usecase.IInvoiceDocumentUseCase
}

func NewLifecycleHandler(lifecycle usecase.ILifecycleUseCase, documents usecase.IInvoiceDocumentUseCase) *LifecycleHandler {
	return &LifecycleHandler{lifecycle: lifecycle, documents: documents}
}

// ListOrders godoc
// @Summary      List orders with their tracking stage
// @Tags         orders
// @Produce      json
// @Success      200  {array}  response.OrderResponse
// @Router       /orders [get]
func (h *LifecycleHandler) ListOrders(c *gin.Context) {
	orders, err := h.lifecycle.ListOrders(c.Request.Context())
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *LifecycleHandler) GetOrder(c *gin.Context) {
	order, err := h.lifecycle.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListInvoices godoc
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Success      200  {array}  response.InvoiceResponse
// @Router       /invoices [get]
func (h *LifecycleHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.lifecycle.ListInvoices(c.Request.Context())
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// GetInvoice godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id} [get]
func (h *LifecycleHandler) GetInvoice(c *gin.Context) {
	inv, err := h.lifecycle.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// DownloadInvoicePDF godoc
// @Summary      Download an invoice as PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path  string  true  "Invoice ID"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id}/pdf [get]
func (h *LifecycleHandler) DownloadInvoicePDF(c *gin.Context) {
	inv, doc, err := h.documents.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+invoiceFileName(inv))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// Tick godoc
// @Summary      Advance the simulation by one tick
// @Tags         lifecycle
// @Produce      json
// @Success      200  {object}  response.TickResponse
// @Router       /lifecycle/tick [post]
func (h *LifecycleHandler) Tick(c *gin.Context) {
	report, err := h.lifecycle.Tick(c.Request.Context())
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTickReport(report))
}

// Snapshot godoc
// @Summary      Current quotes, orders and invoices
// @Tags         lifecycle
// @Produce      json
// @Success      200  {object}  response.SnapshotResponse
// @Router       /lifecycle/snapshot [get]
func (h *LifecycleHandler) Snapshot(c *gin.Context) {
	snap, err := h.lifecycle.Snapshot(c.Request.Context())
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func invoiceFileName(inv entities.Invoice) string {
	return inv.ID + ".pdf"
}

func mapLifecycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
