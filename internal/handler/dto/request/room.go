package request

import (
	"kantine-order-api/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (r CreateRoomRequest) ToParams() commands.CreateRoomParams {
	return commands.CreateRoomParams{
		Name:        r.Name,
		Description: r.Description,
	}
}

type UpdateRoomRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateRoomRequest) ToPatch() commands.RoomPatch {
	return commands.RoomPatch{
		Name:        r.Name,
		Description: r.Description,
	}
}
