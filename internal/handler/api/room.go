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

type RoomHandler struct {
	commands commands.RoomCommands
	queries  queries.RoomQueries
}

func NewRoomHandler(cmd commands.RoomCommands, qry queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Create room
// @Description Create a new deliverable room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} queries.RoomView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		abortRoomError(c, err)
		return
	}

	c.JSON(http.StatusCreated, queries.RoomViewOf(view))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} queries.RoomView
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} queries.RoomView
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		abortRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Update room
// @Description Partially update a room; omitted fields are unchanged
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} queries.RoomView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		abortRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, queries.RoomViewOf(view))
}

// @Summary Delete room
// @Description Delete a room; requires an explicit boolean confirmation
// @Tags rooms
// @Accept json
// @Param id path string true "Room ID"
// @Param request body reqdto.DeleteRequest true "Confirmation"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
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
		abortRoomError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func abortRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRoomNotFound), errors.Is(err, queries.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errors.Is(err, commands.ErrConfirmationRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Deletion requires confirm: true", nil)
	case errors.Is(err, commands.ErrDuplicateName):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room name already in use", nil)
	case errors.Is(err, commands.ErrReferencedByOrders):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room is referenced by existing orders", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
