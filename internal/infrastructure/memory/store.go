// Package memory implementa los puertos de persistencia en memoria.
// Se usa en tests y con STORAGE_DRIVER=memory para correr sin PostgreSQL.
package memory

import (
	"sync"

	"github.com/jhoicas/logistics-api/internal/domain/entity"
)

type productKey struct {
	id     string
	unitID string
}

type state struct {
	units    map[string]*entity.Unit
	users    map[string]*entity.User
	products map[productKey]*entity.Product
}

func newState() *state {
	return &state{
		units:    map[string]*entity.Unit{},
		users:    map[string]*entity.User{},
		products: map[productKey]*entity.Product{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.units {
		u := *v
		c.units[k] = &u
	}
	for k, v := range s.users {
		u := *v
		c.users[k] = &u
	}
	for k, v := range s.products {
		p := *v
		c.products[k] = &p
	}
	return c
}

// Store contiene las tres colecciones. Los repos leen y escriben a través de él.
type Store struct {
	mu   sync.RWMutex
	data *state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{data: newState()}
}

// Reset vacía todas las colecciones.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = newState()
}

// Units repositorio de unidades sobre el store.
func (s *Store) Units() *UnitRepo { return &UnitRepo{s: s} }

// Users repositorio de usuarios sobre el store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Products repositorio de productos sobre el store.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// view ejecuta fn con lock de lectura, o directo sobre tx si el repo pertenece a una transacción.
func (s *Store) view(tx *state, fn func(*state)) {
	if tx != nil {
		fn(tx)
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

func (s *Store) update(tx *state, fn func(*state) error) error {
	if tx != nil {
		return fn(tx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
