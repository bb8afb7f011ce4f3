package api

import (
	"errors"
	"net/http"

	reqdto "kantine-order-api/internal/handler/dto/request"
	"kantine-order-api/internal/handler/httperr"
	"kantine-order-api/internal/usecase/commands"
	"kantine-order-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	commands commands.ProductCommands
	queries  queries.ProductQueries
}

func NewProductHandler(cmd commands.ProductCommands, qry queries.ProductQueries) *ProductHandler {
	return &ProductHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Create product
// @Description Create a catalog product with stock, per-order cap and daily order window
// @Tags products
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} queries.ProductView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	entity, err := h.commands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		abortProductError(c, err)
		return
	}

	c.JSON(http.StatusCreated, queries.ProductViewOf(entity))
}

// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} queries.ProductView
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} queries.ProductView
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		abortProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Update product
// @Description Partially update a product; omitted fields are unchanged
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} queries.ProductView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /products/{id} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	entity, err := h.commands.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		abortProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, queries.ProductViewOf(entity))
}

// @Summary Delete product
// @Description Delete a product; requires an explicit boolean confirmation
// @Tags products
// @Accept json
// @Param id path string true "Product ID"
// @Param request body reqdto.DeleteRequest true "Confirmation"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.DeleteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	if err := h.commands.Delete(c.Request.Context(), id, req.Confirmed()); err != nil {
		abortProductError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func abortProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrProductNotFound), errors.Is(err, queries.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errors.Is(err, commands.ErrConfirmationRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Deletion requires confirm: true", nil)
	case errors.Is(err, commands.ErrDuplicateName):
		httperr.AbortWithError(c, http.StatusConflict, err, "Product name already in use", nil)
	case errors.Is(err, commands.ErrReferencedByOrders):
		httperr.AbortWithError(c, http.StatusConflict, err, "Product is referenced by existing orders", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
