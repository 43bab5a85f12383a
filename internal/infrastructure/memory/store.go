// Package memory implementa los repositorios en memoria. Se usa en tests y con
// STORAGE_DRIVER=memory; aplica las mismas reglas de unicidad que los índices de
// PostgreSQL para que los casos de uso se comporten igual.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
)

type data struct {
	orders       map[string]*entity.ManufacturingOrder
	lots         map[string]*entity.StockLot
	fragments    map[string]*entity.PendingOrderFragment
	consolidated map[string]*entity.ConsolidatedOrder
	audit        []*entity.AuditEntry
}

func newData() *data {
	return &data{
		orders:       make(map[string]*entity.ManufacturingOrder),
		lots:         make(map[string]*entity.StockLot),
		fragments:    make(map[string]*entity.PendingOrderFragment),
		consolidated: make(map[string]*entity.ConsolidatedOrder),
	}
}

func (d *data) clone() *data {
	c := newData()
	for k, v := range d.orders {
		c.orders[k] = v.Clone()
	}
	for k, v := range d.lots {
		c.lots[k] = v.Clone()
	}
	for k, v := range d.fragments {
		c.fragments[k] = v.Clone()
	}
	for k, v := range d.consolidated {
		c.consolidated[k] = v.Clone()
	}
	c.audit = append([]*entity.AuditEntry(nil), d.audit...)
	return c
}

// Store estado compartido. Run serializa las transacciones: trabaja sobre una copia
// y solo la publica si fn termina sin error (rollback = descartar la copia).
type Store struct {
	mu sync.Mutex
	d  *data
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{d: newData()}
}

// Repos repositorios fuera de transacción; cada llamada toma el candado.
func (s *Store) Repos() repository.Repos {
	return reposFor(scope{s: s})
}

// Run implementa ports.TxRunner.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.d.clone()
	if err := fn(reposFor(scope{s: s, tx: work})); err != nil {
		return err
	}
	s.d = work
	return nil
}

// SeedConsolidated inserta pedidos sin comprobar el número único, para reproducir
// datos heredados con duplicados.
func (s *Store) SeedConsolidated(orders ...*entity.ConsolidatedOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range orders {
		s.d.consolidated[o.ID] = o.Clone()
	}
}

// AuditEntries copia del registro de actividad en orden de escritura.
func (s *Store) AuditEntries() []*entity.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.AuditEntry(nil), s.d.audit...)
}

func reposFor(sc scope) repository.Repos {
	return repository.Repos{
		Orders:       &ManufacturingOrderRepo{scope: sc},
		Lots:         &StockLotRepo{scope: sc},
		Fragments:    &OrderFragmentRepo{scope: sc},
		Consolidated: &ConsolidatedOrderRepo{scope: sc},
		Audit:        &AuditRepo{scope: sc},
	}
}

// scope decide si una llamada va contra la copia de una transacción (candado ya
// tomado por Run) o contra el estado publicado.
type scope struct {
	s  *Store
	tx *data
}

func (sc scope) view(fn func(d *data) error) error {
	if sc.tx != nil {
		return fn(sc.tx)
	}
	sc.s.mu.Lock()
	defer sc.s.mu.Unlock()
	return fn(sc.s.d)
}
