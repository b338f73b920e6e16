package wizard

import (
	"context"
	"log/slog"
	"sync"

	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/pkg/errs"
	"scheme-console/internal/pkg/metrics"
	"scheme-console/internal/usecase/commands"
	"scheme-console/internal/usecase/shared"
)

// Session is the single active scheme editor. It holds the current draft, the
// wizard stage and the catalog data loaded for it. Draft mutations swap the
// whole draft under the mutex; catalog calls run without holding it.
type Session struct {
	catalog shared.CatalogProvider
	codes   shared.SchemeCodeGenerator
	packs   *PackSizeCache
	logger  *slog.Logger

	mu       sync.Mutex
	draft    scheme.Draft
	stage    scheme.Stage
	snapshot shared.CatalogSnapshot
	// skuGen invalidates SKU loads started before the latest value type change.
	skuGen uint64
}

func NewSession(ctx context.Context, catalog shared.CatalogProvider, codes shared.SchemeCodeGenerator, m *metrics.Metrics, logger *slog.Logger) (*Session, error) {
	s := &Session{
		catalog: catalog,
		codes:   codes,
		packs:   NewPackSizeCache(catalog.ListPackSizes, m),
		logger:  logger,
		draft:   scheme.NewDraft(""),
		stage:   scheme.StageIdentity,
	}
	if err := s.Reset(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the draft and starts over with a fresh scheme code.
func (s *Session) Reset(ctx context.Context) error {
	code, err := s.codes.Generate(ctx)
	if err != nil {
		return errs.Wrap(err, "generate scheme code")
	}
	regions, err := s.catalog.ListRegions(ctx)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "list regions"), errs.ErrCatalogFailure)
	}
	couponTypes, err := s.catalog.ListCouponTypes(ctx)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "list coupon types"), errs.ErrCatalogFailure)
	}

	s.mu.Lock()
	s.draft = scheme.NewDraft(code)
	s.stage = scheme.StageIdentity
	s.snapshot = shared.CatalogSnapshot{Regions: regions, CouponTypes: couponTypes}
	s.skuGen++
	gen := s.skuGen
	vt := s.draft.ValueType()
	s.mu.Unlock()
	s.packs.Clear()

	return s.loadSKUs(ctx, vt, gen)
}

func (s *Session) loadSKUs(ctx context.Context, vt scheme.ValueType, gen uint64) error {
	skus, err := s.catalog.ListSKUs(ctx, vt)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "list %s skus", vt), errs.ErrCatalogFailure)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.skuGen == gen {
		s.snapshot.SKUs = skus
	}
	return nil
}

func (s *Session) Draft() scheme.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Session) Stage() scheme.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

func (s *Session) Catalog() shared.CatalogSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return shared.CatalogSnapshot{
		Regions:     append([]scheme.Region(nil), s.snapshot.Regions...),
		SKUs:        append([]scheme.SKU(nil), s.snapshot.SKUs...),
		CouponTypes: append([]scheme.CouponType(nil), s.snapshot.CouponTypes...),
	}
}

// Review returns the draft form with override state names taken from the
// loaded regions.
func (s *Session) Review() scheme.FormData {
	s.mu.Lock()
	form := s.draft.Form()
	names := s.snapshot.RegionNames()
	s.mu.Unlock()

	for i := range form.SKUPackEntries {
		overrides := form.SKUPackEntries[i].RegionOverrides
		for j := range overrides {
			overrides[j].StateNames = names.Lookup(overrides[j].StateCodes)
		}
	}
	return form
}

// PackSizes returns the pack sizes of a SKU, loading them once per SKU until
// the value type changes or the session resets.
func (s *Session) PackSizes(ctx context.Context, skuID string) ([]scheme.PackSize, error) {
	sizes, err := s.packs.Get(ctx, skuID)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "list pack sizes for %s", skuID), errs.ErrCatalogFailure)
	}
	return sizes, nil
}

func (s *Session) mutate(fn func(d scheme.Draft) (scheme.Draft, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.draft)
	if err != nil {
		return err
	}
	s.draft = next
	return nil
}

func (s *Session) Update(p scheme.FormPatch) {
	_ = s.mutate(func(d scheme.Draft) (scheme.Draft, error) { return d.Update(p), nil })
}

// SetValueType switches the SKU segment: entries are cleared, the SKU list is
// reloaded and cached pack sizes are dropped.
func (s *Session) SetValueType(ctx context.Context, vt scheme.ValueType) error {
	s.mu.Lock()
	next, err := s.draft.SetValueType(vt)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.draft = next
	s.snapshot.SKUs = nil
	s.skuGen++
	gen := s.skuGen
	s.mu.Unlock()
	s.packs.Clear()

	return s.loadSKUs(ctx, vt, gen)
}

func (s *Session) SetFixedRegions(codes []string) {
	_ = s.mutate(func(d scheme.Draft) (scheme.Draft, error) { return d.SetFixedRegions(codes), nil })
}

// AddEntry adds a SKU + pack size pair, taking display names from the catalog.
func (s *Session) AddEntry(ctx context.Context, skuID, packSizeID string) error {
	s.mu.Lock()
	sku, ok := shared.FindSKU(s.snapshot.SKUs, skuID)
	vt := s.draft.ValueType()
	s.mu.Unlock()
	if !ok {
		return errs.Wrapf(errs.ErrUnknownSKU, "sku %s is not in the %s catalog", skuID, vt)
	}

	sizes, err := s.PackSizes(ctx, skuID)
	if err != nil {
		return err
	}
	ps, ok := shared.FindPackSize(sizes, packSizeID)
	if !ok {
		return errs.Wrapf(errs.ErrUnknownPackSize, "pack size %s does not belong to sku %s", packSizeID, skuID)
	}

	return s.mutate(func(d scheme.Draft) (scheme.Draft, error) {
		if d.ValueType() != vt {
			return d, errs.Wrapf(errs.ErrUnknownSKU, "value type changed while adding sku %s", skuID)
		}
		return d.AddEntry(scheme.SKUPackEntry{
			SKUID:         sku.ID,
			SKUName:       sku.Name,
			PackSizeID:    ps.ID,
			PackSizeLabel: ps.Label,
		})
	})
}

func (s *Session) RemoveEntry(index int) error {
	return s.mutate(func(d scheme.Draft) (scheme.Draft, error) { return d.RemoveEntry(index) })
}

// UpdateEntry patches an entry. A coupon type change without a name gets the
// name from the loaded coupon types.
func (s *Session) UpdateEntry(index int, p scheme.EntryPatch) error {
	return s.mutate(func(d scheme.Draft) (scheme.Draft, error) {
		if p.CouponTypeID != nil && p.CouponTypeName == nil {
			if ct, ok := shared.FindCouponType(s.snapshot.CouponTypes, *p.CouponTypeID); ok {
				name := ct.Name
				p.CouponTypeName = &name
			}
		}
		return d.UpdateEntry(index, p)
	})
}

func (s *Session) AddOverride(entryIndex int, codes []string) error {
	return s.mutate(func(d scheme.Draft) (scheme.Draft, error) { return d.AddOverride(entryIndex, codes) })
}

func (s *Session) UpdateOverride(entryIndex, overrideIndex int, p scheme.OverridePatch) error {
	return s.mutate(func(d scheme.Draft) (scheme.Draft, error) { return d.UpdateOverride(entryIndex, overrideIndex, p) })
}

func (s *Session) RemoveOverride(entryIndex, overrideIndex int) error {
	return s.mutate(func(d scheme.Draft) (scheme.Draft, error) { return d.RemoveOverride(entryIndex, overrideIndex) })
}

// Next moves to the following stage when the current one is complete.
func (s *Session) Next() (scheme.Stage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.draft.CanAdvance(s.stage) {
		return s.stage, errs.Wrapf(errs.ErrStageIncomplete, "stage %s", s.stage)
	}
	if s.stage < scheme.StageReview {
		s.stage++
	}
	return s.stage, nil
}

func (s *Session) Back() scheme.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage > scheme.StageIdentity {
		s.stage--
	}
	return s.stage
}

// Submit finalizes the draft. On success the session starts a new draft; on
// failure the draft is left as is so it can be corrected.
func (s *Session) Submit(ctx context.Context, cmds commands.SchemeCommands) (*commands.FinalizeResult, error) {
	d := s.Draft()
	res, err := cmds.Finalize(ctx, d.Code(), d.Form())
	if err != nil {
		return nil, err
	}
	if resetErr := s.Reset(ctx); resetErr != nil {
		s.logger.Warn("failed to reset wizard after submit", "scheme_code", d.Code(), "error", resetErr)
	}
	return res, nil
}
