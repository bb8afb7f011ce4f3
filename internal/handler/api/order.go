package api

import (
	"errors"
	"net/http"

	"kantine-order-api/internal/domain/order"
	reqdto "kantine-order-api/internal/handler/dto/request"
	"kantine-order-api/internal/handler/httperr"
	"kantine-order-api/internal/usecase/commands"
	"kantine-order-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	commands commands.OrderCommands
	queries  queries.OrderQueries
}

func NewOrderHandler(cmd commands.OrderCommands, qry queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Create order
// @Description Submit an order; it is admitted only if every rule passes. A
// @Description rejected order reports the full list of violations at once.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order"
// @Success 201 {object} queries.OrderView
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	entity, err := h.commands.Create(c.Request.Context(), req.ToDraft())
	if err != nil {
		abortOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, queries.OrderViewOf(entity))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {array} queries.OrderView
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		abortOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Update order
// @Description Merge the given fields into the stored order and re-admit the
// @Description result as a whole; a single violation rejects the entire update.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [patch]
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	entity, err := h.commands.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		abortOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, queries.OrderViewOf(entity))
}

// @Summary Delete order
// @Description Delete an order; requires an explicit boolean confirmation
// @Tags orders
// @Accept json
// @Param id path string true "Order ID"
// @Param request body reqdto.DeleteRequest true "Confirmation"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
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
		abortOrderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func abortOrderError(c *gin.Context, err error) {
	var validationErr *order.ValidationError
	switch {
	case errors.As(err, &validationErr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Order validation failed",
			httperr.ValidationDetail{Violations: validationErr.Violations})
	case errors.Is(err, commands.ErrOrderNotFound), errors.Is(err, queries.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
	case errors.Is(err, commands.ErrConfirmationRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Deletion requires confirm: true", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
