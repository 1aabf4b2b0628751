package handlers

import (
	"errors"
	"io"
	"net/http"

	"bizportal/internal/adapter/http/dto/response"
	"bizportal/internal/usecase"
	"bizportal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidImagePayload = pkg.NewDomainErrorSimple("INVALID_IMAGE_INPUT", "Expected multipart form with image and instruction", http.StatusBadRequest)

type CatalogHandler struct {
	catalog usecase.ICatalogUseCase
	images  usecase.IImageEditUseCase
}

func NewCatalogHandler(catalog usecase.ICatalogUseCase, images usecase.IImageEditUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, images: images}
}

// ListProducts godoc
// @Summary      List catalog products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Category filter, All for every product"
// @Success      200       {array}   response.ProductResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// GetProduct godoc
// @Summary      Get a catalog product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  response.ProductResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// EditProductImage sends an uploaded product image and an instruction to
// the generative image service and streams the edited image back.
//
// @Summary      Edit a product image
// @Tags         products
// @Accept       multipart/form-data
// @Produce      image/png
// @Param        id           path      string  true  "Product ID"
// @Param        image        formData  file    true  "Source image"
// @Param        instruction  formData  string  true  "Edit instruction"
// @Success      200
// @Failure      400  {object}  pkg.HTTPError
// @Failure      429  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /products/{id}/image [post]
func (h *CatalogHandler) EditProductImage(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := h.catalog.GetByID(ctx, c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(errInvalidImagePayload.HTTPStatus, errInvalidImagePayload.ToHTTPError())
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(errInvalidImagePayload.HTTPStatus, errInvalidImagePayload.ToHTTPError())
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxImageBytes+1))
	if err != nil {
		c.JSON(errInvalidImagePayload.HTTPStatus, errInvalidImagePayload.ToHTTPError())
		return
	}

	edited, err := h.images.Edit(ctx, data, c.PostForm("instruction"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, edited.MimeType, edited.Data)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidImage):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE", "Unsupported or empty image", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInstruction):
		return pkg.NewDomainErrorSimple("INVALID_INSTRUCTION", "Edit instruction is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageEditFailed):
		return pkg.NewDomainError("IMAGE_SERVICE_ERROR", "Image service failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
