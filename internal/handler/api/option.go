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

type OptionHandler struct {
	commands commands.OptionCommands
	queries  queries.OptionQueries
}

func NewOptionHandler(cmd commands.OptionCommands, qry queries.OptionQueries) *OptionHandler {
	return &OptionHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Create option
// @Description Create an add-on catalog entry
// @Tags options
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOptionRequest true "Option"
// @Success 201 {object} queries.OptionView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /options [post]
func (h *OptionHandler) Create(c *gin.Context) {
	var req reqdto.CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	entity, err := h.commands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		abortOptionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, queries.OptionViewOf(entity))
}

// @Summary Get option
// @Tags options
// @Produce json
// @Param id path string true "Option ID"
// @Success 200 {object} queries.OptionView
// @Failure 404 {object} httperr.Response
// @Router /options/{id} [get]
func (h *OptionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortOptionError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List options
// @Tags options
// @Produce json
// @Success 200 {array} queries.OptionView
// @Router /options [get]
func (h *OptionHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		abortOptionError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Update option
// @Description Partially update an option; omitted fields are unchanged
// @Tags options
// @Accept json
// @Produce json
// @Param id path string true "Option ID"
// @Param request body reqdto.UpdateOptionRequest true "Fields to update"
// @Success 200 {object} queries.OptionView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /options/{id} [patch]
func (h *OptionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	entity, err := h.commands.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		abortOptionError(c, err)
		return
	}

	c.JSON(http.StatusOK, queries.OptionViewOf(entity))
}

// @Summary Delete option
// @Description Delete an option; requires an explicit boolean confirmation
// @Tags options
// @Accept json
// @Param id path string true "Option ID"
// @Param request body reqdto.DeleteRequest true "Confirmation"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /options/{id} [delete]
func (h *OptionHandler) Delete(c *gin.Context) {
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
		abortOptionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func abortOptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrOptionNotFound), errors.Is(err, queries.ErrOptionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Option not found", nil)
	case errors.Is(err, commands.ErrConfirmationRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Deletion requires confirm: true", nil)
	case errors.Is(err, commands.ErrDuplicateName):
		httperr.AbortWithError(c, http.StatusConflict, err, "Option name already in use", nil)
	case errors.Is(err, commands.ErrReferencedByOrders):
		httperr.AbortWithError(c, http.StatusConflict, err, "Option is referenced by existing orders", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
