package memstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/infra"

	"github.com/google/uuid"
)

// SchemeStore keeps schemes in process memory. Stored definitions are copies,
// so callers never share state with the store.
type SchemeStore struct {
	logger *slog.Logger

	mu     sync.RWMutex
	byID   map[uuid.UUID]*scheme.Definition
	byCode map[string]uuid.UUID
	order  []uuid.UUID
}

func NewSchemeStore(logger *slog.Logger) *SchemeStore {
	return &SchemeStore{
		logger: logger,
		byID:   make(map[uuid.UUID]*scheme.Definition),
		byCode: make(map[string]uuid.UUID),
	}
}

func (s *SchemeStore) Save(_ context.Context, def *scheme.Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.byCode[def.SchemeCode()]; dup {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "scheme code already exists", nil)
	}
	if _, dup := s.byID[def.ID()]; dup {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "scheme id already exists", nil)
	}
	s.byID[def.ID()] = clone(def)
	s.byCode[def.SchemeCode()] = def.ID()
	s.order = append(s.order, def.ID())
	return nil
}

// List returns schemes in insertion order.
func (s *SchemeStore) List(_ context.Context) ([]*scheme.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*scheme.Definition, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clone(s.byID[id]))
	}
	return out, nil
}

func (s *SchemeStore) FindByID(_ context.Context, id uuid.UUID) (*scheme.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "scheme not found", nil)
	}
	return clone(def), nil
}

func (s *SchemeStore) ExistsByCode(_ context.Context, code string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byCode[code]
	return ok, nil
}

func (s *SchemeStore) UpdateStatus(_ context.Context, def *scheme.Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[def.ID()]; !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "scheme not found", nil)
	}
	s.byID[def.ID()] = clone(def)
	return nil
}

// Delete removes the scheme together with its entries and overrides.
func (s *SchemeStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	def, ok := s.byID[id]
	if !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "scheme not found", nil)
	}
	delete(s.byID, id)
	delete(s.byCode, def.SchemeCode())
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *SchemeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func clone(def *scheme.Definition) *scheme.Definition {
	var activatedAt *time.Time
	if at := def.ActivatedAt(); at != nil {
		t := *at
		activatedAt = &t
	}
	return scheme.ReconstructDefinition(
		def.ID(),
		def.SchemeCode(),
		def.Form(),
		def.FixedStateNames(),
		def.Status(),
		activatedAt,
		def.CreatedAt(),
		def.UpdatedAt(),
	)
}
