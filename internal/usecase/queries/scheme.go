package queries

import (
	"context"
	"sort"

	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/infra"
	"scheme-console/internal/pkg/clock"
	"scheme-console/internal/pkg/metrics"
	"scheme-console/internal/usecase/shared"

	"github.com/google/uuid"
)

type SchemeQueries interface {
	List(ctx context.Context, filters SchemeFilters) ([]*SchemeListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SchemeView, error)
	Resolve(ctx context.Context, id uuid.UUID, entryIndex int, regionCode string) (*scheme.EffectiveValue, error)
	Coverage(ctx context.Context, id uuid.UUID, entryIndex int) (*CoverageView, error)
}

type schemeQueriesImpl struct {
	repo    shared.SchemeRepository
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewSchemeQueries(repo shared.SchemeRepository, clk clock.Clock, m *metrics.Metrics) SchemeQueries {
	return &schemeQueriesImpl{repo: repo, clock: clk, metrics: m}
}

// List returns schemes newest first.
func (q *schemeQueriesImpl) List(ctx context.Context, filters SchemeFilters) ([]*SchemeListItem, error) {
	defs, err := q.repo.List(ctx)
	if err != nil {
		return nil, infra.ToSchemeErr(err, "list schemes")
	}

	now := q.clock.Now()
	items := make([]*SchemeListItem, 0, len(defs))
	for _, d := range defs {
		item := toSchemeListItem(d, now)
		if filters.Status != nil && item.Status != *filters.Status {
			continue
		}
		if filters.ValueType != nil && item.ValueType != *filters.ValueType {
			continue
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (q *schemeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SchemeView, error) {
	d, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSchemeView(d, q.clock.Now()), nil
}

func (q *schemeQueriesImpl) Resolve(ctx context.Context, id uuid.UUID, entryIndex int, regionCode string) (*scheme.EffectiveValue, error) {
	d, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	v, err := d.Resolve(entryIndex, regionCode)
	if err != nil {
		return nil, err
	}
	q.metrics.RecordResolve(string(v.Source))
	return &v, nil
}

func (q *schemeQueriesImpl) Coverage(ctx context.Context, id uuid.UUID, entryIndex int) (*CoverageView, error) {
	d, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	values, err := d.Coverage(entryIndex)
	if err != nil {
		return nil, err
	}
	entry := d.SKUPackEntries()[entryIndex]
	return &CoverageView{
		SchemeID:   d.ID(),
		EntryIndex: entryIndex,
		SKUID:      entry.SKUID,
		PackSizeID: entry.PackSizeID,
		Values:     values,
	}, nil
}

func (q *schemeQueriesImpl) find(ctx context.Context, id uuid.UUID) (*scheme.Definition, error) {
	d, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, infra.ToSchemeErr(err, "find scheme")
	}
	return d, nil
}
