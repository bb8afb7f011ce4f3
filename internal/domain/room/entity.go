package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrRoomNameTooLong = errors.New("room name is too long (max 100 characters)")
)

const MaxRoomNameLength = 100

// Room is a plain catalog entity: orders reference it, nothing more.
type Room struct {
	id          uuid.UUID
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(name, description string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return nil, ErrRoomNameTooLong
	}

	return &Room{
		id:          uuid.New(),
		name:        name,
		description: strings.TrimSpace(description),
	}, nil
}

func Reconstruct(id uuid.UUID, name, description string, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Apply returns a copy with the given field values after validation,
// keeping identity and creation time.
func (r *Room) Apply(name, description string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return nil, ErrRoomNameTooLong
	}

	updated := *r
	updated.name = name
	updated.description = strings.TrimSpace(description)
	return &updated, nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Description() string  { return r.description }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
