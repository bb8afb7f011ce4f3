package commands

import (
	"context"

	"kantine-order-api/internal/domain/room"
	"kantine-order-api/internal/infra"
	"kantine-order-api/internal/pkg/errs"
	"kantine-order-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateRoomParams struct {
	Name        string
	Description string
}

type RoomPatch struct {
	Name        *string
	Description *string
}

type RoomCommands interface {
	Create(ctx context.Context, params CreateRoomParams) (*room.Room, error)
	Update(ctx context.Context, id uuid.UUID, p RoomPatch) (*room.Room, error)
	Delete(ctx context.Context, id uuid.UUID, confirm bool) error
}

type roomCommandsImpl struct {
	repo RoomRepository
}

func NewRoomCommands(repo RoomRepository) RoomCommands {
	return &roomCommandsImpl{repo: repo}
}

func (u *roomCommandsImpl) Create(ctx context.Context, params CreateRoomParams) (*room.Room, error) {
	entity, err := room.NewRoom(params.Name, params.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.repo.Insert(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateName
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return u.reload(ctx, entity.ID())
}

func (u *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, p RoomPatch) (*room.Room, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	merged, err := existing.Apply(
		patch.Coalesce(p.Name, existing.Name()),
		patch.Coalesce(p.Description, existing.Description()),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.repo.Update(ctx, merged); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrRoomNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateName
		default:
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
	}

	return u.reload(ctx, id)
}

func (u *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}

	if err := u.repo.DeleteByID(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrRoomNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrReferencedByOrders
		default:
			return errs.Mark(err, ErrStoreUnavailable)
		}
	}
	return nil
}

func (u *roomCommandsImpl) reload(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	stored, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return stored, nil
}
