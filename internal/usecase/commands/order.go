package commands

import (
	"context"
	"log/slog"
	"time"

	"kantine-order-api/internal/domain/catalog"
	"kantine-order-api/internal/domain/order"
	"kantine-order-api/internal/infra"
	"kantine-order-api/internal/pkg/clock"
	"kantine-order-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// OrderPatch is a partial update. Nil fields are left unchanged; the merged
// candidate is re-validated as a whole, never field by field.
type OrderPatch struct {
	RequestedDeliveryDate *time.Time
	RoomID                *uuid.UUID
	Products              []order.ProductLine
	Options               []order.OptionLine
}

type OrderCommands interface {
	Create(ctx context.Context, draft order.Draft) (*order.Order, error)
	Update(ctx context.Context, id uuid.UUID, patch OrderPatch) (*order.Order, error)
	Delete(ctx context.Context, id uuid.UUID, confirm bool) error
}

// orderCommandsImpl is the order lifecycle manager: it snapshots the catalog,
// runs the admission engine against a single evaluation instant, and only
// then touches the order repository.
//
// Catalog state can change between snapshot and insert; two orders competing
// for the same scarce stock can both pass validation and both persist. The
// original system has no reservation step and this implementation keeps that
// behavior. See DESIGN.md.
type orderCommandsImpl struct {
	orderRepo   OrderRepository
	roomRepo    RoomRepository
	productRepo ProductRepository
	optionRepo  OptionRepository
	engine      *order.Engine
	clock       clock.Clock
}

func NewOrderCommands(
	orderRepo OrderRepository,
	roomRepo RoomRepository,
	productRepo ProductRepository,
	optionRepo OptionRepository,
	engine *order.Engine,
	clock clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		orderRepo:   orderRepo,
		roomRepo:    roomRepo,
		productRepo: productRepo,
		optionRepo:  optionRepo,
		engine:      engine,
		clock:       clock,
	}
}

func (u *orderCommandsImpl) Create(ctx context.Context, draft order.Draft) (*order.Order, error) {
	entity, err := u.validate(ctx, draft, order.StatusDraft)
	if err != nil {
		return nil, err
	}

	if err := u.orderRepo.Insert(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return u.reload(ctx, entity.ID())
}

func (u *orderCommandsImpl) Update(ctx context.Context, id uuid.UUID, patch OrderPatch) (*order.Order, error) {
	existing, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	draft := existing.ToDraft()
	if err := copier.CopyWithOption(&draft, &patch, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errs.Wrap(err, "failed to merge order patch")
	}

	snap, err := u.loadSnapshot(ctx, draft)
	if err != nil {
		return nil, err
	}

	validated, violations := u.engine.Evaluate(draft, snap, u.clock.Now())
	if len(violations) > 0 {
		return nil, &order.ValidationError{Violations: violations}
	}

	d := validated.Draft()
	merged := order.Reconstruct(id, d.RequestedDeliveryDate, d.RoomID, d.Products, d.Options, existing.CreatedAt(), existing.UpdatedAt())
	if err := u.orderRepo.Update(ctx, merged); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return u.reload(ctx, id)
}

// Delete requires an explicit boolean confirmation before touching storage.
func (u *orderCommandsImpl) Delete(ctx context.Context, id uuid.UUID, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}

	if err := u.orderRepo.DeleteByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return nil
}

// validate walks the lifecycle from an incoming draft to an accepted entity:
// Draft -> Validating -> {Accepted, Rejected}; Accepted -> Persisted happens
// at the repository boundary in the caller.
func (u *orderCommandsImpl) validate(ctx context.Context, draft order.Draft, status order.Status) (*order.Order, error) {
	status, err := status.Transition(order.StatusValidating)
	if err != nil {
		return nil, errs.Wrap(err, "order lifecycle")
	}

	snap, err := u.loadSnapshot(ctx, draft)
	if err != nil {
		return nil, err
	}

	validated, violations := u.engine.Evaluate(draft, snap, u.clock.Now())
	if len(violations) > 0 {
		status, _ = status.Transition(order.StatusRejected)
		slog.Debug("order rejected", "status", string(status), "violations", len(violations))
		return nil, &order.ValidationError{Violations: violations}
	}

	status, _ = status.Transition(order.StatusAccepted)
	slog.Debug("order accepted", "status", string(status), "validated_at", validated.ValidatedAt())

	return order.NewFromValidated(validated), nil
}

// loadSnapshot fetches the room and every referenced product/option once.
// Unknown ids become absences in the snapshot (the engine reports those as
// violations); only genuine store faults abort the evaluation.
func (u *orderCommandsImpl) loadSnapshot(ctx context.Context, draft order.Draft) (order.Snapshot, error) {
	snap := order.Snapshot{
		Products: make(map[uuid.UUID]*catalog.Product, len(draft.Products)),
		Options:  make(map[uuid.UUID]*catalog.Option, len(draft.Options)),
	}

	r, err := u.roomRepo.FindByID(ctx, draft.RoomID)
	switch {
	case err == nil:
		snap.Room = r
	case infra.IsKind(err, infra.KindNotFound):
		// absent room is a violation, not a fault
	default:
		return order.Snapshot{}, errs.Mark(err, ErrStoreUnavailable)
	}

	for _, line := range draft.Products {
		if _, ok := snap.Products[line.ProductID]; ok {
			continue
		}
		p, err := u.productRepo.FindByID(ctx, line.ProductID)
		switch {
		case err == nil:
			snap.Products[line.ProductID] = p
		case infra.IsKind(err, infra.KindNotFound):
		default:
			return order.Snapshot{}, errs.Mark(err, ErrStoreUnavailable)
		}
	}

	for _, line := range draft.Options {
		if _, ok := snap.Options[line.OptionID]; ok {
			continue
		}
		o, err := u.optionRepo.FindByID(ctx, line.OptionID)
		switch {
		case err == nil:
			snap.Options[line.OptionID] = o
		case infra.IsKind(err, infra.KindNotFound):
		default:
			return order.Snapshot{}, errs.Mark(err, ErrStoreUnavailable)
		}
	}

	return snap, nil
}

func (u *orderCommandsImpl) reload(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	stored, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return stored, nil
}
