// Package memory provides a mutex-guarded in-memory store with the same
// contract as the postgres repositories, used for local runs and unit tests.
package memory

import (
	"sync"

	"kantine-order-api/internal/domain/catalog"
	"kantine-order-api/internal/domain/order"
	"kantine-order-api/internal/domain/room"
	"kantine-order-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	clock    clock.Clock
	rooms    map[uuid.UUID]*room.Room
	products map[uuid.UUID]*catalog.Product
	options  map[uuid.UUID]*catalog.Option
	orders   map[uuid.UUID]*order.Order
}

func NewStore(clk clock.Clock) *Store {
	return &Store{
		clock:    clk,
		rooms:    make(map[uuid.UUID]*room.Room),
		products: make(map[uuid.UUID]*catalog.Product),
		options:  make(map[uuid.UUID]*catalog.Option),
		orders:   make(map[uuid.UUID]*order.Order),
	}
}

func (s *Store) Rooms() *RoomRepository       { return &RoomRepository{store: s} }
func (s *Store) Products() *ProductRepository { return &ProductRepository{store: s} }
func (s *Store) Options() *OptionRepository   { return &OptionRepository{store: s} }
func (s *Store) Orders() *OrderRepository     { return &OrderRepository{store: s} }

func (s *Store) roomNameTaken(name string, except uuid.UUID) bool {
	for id, r := range s.rooms {
		if id != except && r.Name() == name {
			return true
		}
	}
	return false
}

func (s *Store) productNameTaken(name string, except uuid.UUID) bool {
	for id, p := range s.products {
		if id != except && p.Name() == name {
			return true
		}
	}
	return false
}

func (s *Store) optionNameTaken(name string, except uuid.UUID) bool {
	for id, o := range s.options {
		if id != except && o.Name() == name {
			return true
		}
	}
	return false
}

func (s *Store) roomReferenced(id uuid.UUID) bool {
	for _, o := range s.orders {
		if o.RoomID() == id {
			return true
		}
	}
	return false
}

func (s *Store) productReferenced(id uuid.UUID) bool {
	for _, o := range s.orders {
		for _, line := range o.Products() {
			if line.ProductID == id {
				return true
			}
		}
	}
	return false
}

func (s *Store) optionReferenced(id uuid.UUID) bool {
	for _, o := range s.orders {
		for _, line := range o.Options() {
			if line.OptionID == id {
				return true
			}
		}
	}
	return false
}
