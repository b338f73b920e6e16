//go:build unit

package wizard_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/infra/catalog"
	"scheme-console/internal/infra/codegen"
	"scheme-console/internal/infra/memstore"
	"scheme-console/internal/pkg/clock"
	"scheme-console/internal/pkg/config"
	"scheme-console/internal/pkg/errs"
	"scheme-console/internal/pkg/metrics"
	"scheme-console/internal/pkg/ptr"
	"scheme-console/internal/usecase/commands"
	"scheme-console/internal/usecase/shared"
	"scheme-console/internal/usecase/wizard"
	"scheme-console/tests/common/builder"
	sharedmock "scheme-console/tests/mock/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	session *wizard.Session
	store   *memstore.SchemeStore
	cmds    commands.SchemeCommands
}

func newSessionFixture(t *testing.T, cat shared.CatalogProvider) *sessionFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())
	clk := clock.NewMockClock(builder.FixedNow)
	store := memstore.NewSchemeStore(logger)
	gen := codegen.NewGenerator(codegen.NewMemorySequencer(), store, clk, "SCH")

	session, err := wizard.NewSession(context.Background(), cat, gen, m, logger)
	require.NoError(t, err)

	return &sessionFixture{
		session: session,
		store:   store,
		cmds:    commands.NewSchemeCommands(store, cat, gen, clk, config.NewTestConfig(), m, logger),
	}
}

func loadCatalog(t *testing.T) *catalog.StaticCatalog {
	t.Helper()
	cat, err := catalog.Load("")
	require.NoError(t, err)
	return cat
}

// delegatingCatalog forwards every call to the embedded catalog; tests tighten
// individual expectations before use.
func delegatingCatalog(t *testing.T, ctrl *gomock.Controller) (*sharedmock.MockCatalogProvider, *catalog.StaticCatalog) {
	t.Helper()
	seed := loadCatalog(t)
	m := sharedmock.NewMockCatalogProvider(ctrl)
	m.EXPECT().ListRegions(gomock.Any()).DoAndReturn(seed.ListRegions).AnyTimes()
	m.EXPECT().ListSKUs(gomock.Any(), gomock.Any()).DoAndReturn(seed.ListSKUs).AnyTimes()
	m.EXPECT().ListCouponTypes(gomock.Any()).DoAndReturn(seed.ListCouponTypes).AnyTimes()
	return m, seed
}

func TestNewSession(t *testing.T) {
	f := newSessionFixture(t, loadCatalog(t))

	assert.Equal(t, "SCH-20261017-001", f.session.Draft().Code())
	assert.Equal(t, scheme.StageIdentity, f.session.Stage())
	assert.Equal(t, scheme.ValueTypeRupees, f.session.Draft().ValueType())

	snap := f.session.Catalog()
	assert.Len(t, snap.Regions, 29)
	assert.Len(t, snap.SKUs, 5)
	assert.Len(t, snap.CouponTypes, 3)
}

func TestSession_Walkthrough(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t, loadCatalog(t))
	s := f.session

	s.Update(scheme.FormPatch{
		Name:      ptr.Of("Diwali Promo"),
		StartDate: ptr.Of(builder.DiwaliStart),
		EndDate:   ptr.Of(builder.DiwaliEnd),
	})
	stage, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, scheme.StageRegions, stage)

	_, err = s.Next()
	assert.True(t, errs.Is(err, errs.ErrStageIncomplete))

	s.SetFixedRegions([]string{"mh", "GJ"})
	stage, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, scheme.StageEntries, stage)

	require.NoError(t, s.AddEntry(ctx, "sku-1", "ps-2"))
	stage, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, scheme.StageDetails, stage)

	_, err = s.Next()
	assert.True(t, errs.Is(err, errs.ErrStageIncomplete))

	require.NoError(t, s.UpdateEntry(0, scheme.EntryPatch{
		CouponCount:  ptr.Of(5000),
		CouponValue:  ptr.Of(10.0),
		ExpiryDate:   ptr.Of(builder.DiwaliExpiry),
		CouponTypeID: ptr.Of("ct-1"),
	}))
	require.NoError(t, s.AddOverride(0, []string{"GJ"}))
	require.NoError(t, s.UpdateOverride(0, 0, scheme.OverridePatch{Value: ptr.Of(15.0), CouponCount: ptr.Of(2000)}))

	stage, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, scheme.StageReview, stage)
	assert.Equal(t, []string{"Gujarat"}, s.Review().SKUPackEntries[0].RegionOverrides[0].StateNames)

	entry := s.Draft().Form().SKUPackEntries[0]
	assert.Equal(t, "Coca Cola", entry.SKUName)
	assert.Equal(t, "500ml", entry.PackSizeLabel)
	assert.Equal(t, "Round", entry.CouponTypeName)
	assert.Equal(t, []string{"MH", "GJ"}, s.Draft().Form().FixedStateCodes)

	res, err := s.Submit(ctx, f.cmds)
	require.NoError(t, err)
	assert.Equal(t, "SCH-20261017-001", res.Scheme.SchemeCode())
	assert.Equal(t, 1, f.store.Len())

	gj, err := res.Scheme.Resolve(0, "GJ")
	require.NoError(t, err)
	assert.Equal(t, 15.0, gj.Value)

	assert.Equal(t, "SCH-20261017-002", s.Draft().Code())
	assert.Equal(t, scheme.StageIdentity, s.Stage())
	assert.Equal(t, 0, s.Draft().EntryCount())
}

func TestSession_Back(t *testing.T) {
	f := newSessionFixture(t, loadCatalog(t))

	assert.Equal(t, scheme.StageIdentity, f.session.Back())

	f.session.Update(scheme.FormPatch{
		Name:      ptr.Of("Diwali Promo"),
		StartDate: ptr.Of(builder.DiwaliStart),
		EndDate:   ptr.Of(builder.DiwaliEnd),
	})
	_, err := f.session.Next()
	require.NoError(t, err)
	assert.Equal(t, scheme.StageIdentity, f.session.Back())
}

func TestSession_AddEntry(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		skuID    string
		packID   string
		errIs    error
		existing bool
	}{
		{name: "sku outside the segment", skuID: "foc-1", packID: "fps-1", errIs: errs.ErrUnknownSKU},
		{name: "pack size of another sku", skuID: "sku-1", packID: "ps-6", errIs: errs.ErrUnknownPackSize},
		{name: "duplicate pair", skuID: "sku-1", packID: "ps-2", errIs: scheme.ErrDuplicateEntry, existing: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newSessionFixture(t, loadCatalog(t))
			if c.existing {
				require.NoError(t, f.session.AddEntry(ctx, c.skuID, c.packID))
			}
			before := f.session.Draft().EntryCount()

			err := f.session.AddEntry(ctx, c.skuID, c.packID)

			assert.True(t, errs.Is(err, c.errIs), "got %v", err)
			assert.Equal(t, before, f.session.Draft().EntryCount())
		})
	}
}

func TestSession_PackSizesLoadedOnce(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cat, seed := delegatingCatalog(t, ctrl)
	cat.EXPECT().ListPackSizes(gomock.Any(), "sku-1").DoAndReturn(seed.ListPackSizes).Times(1)

	f := newSessionFixture(t, cat)

	sizes, err := f.session.PackSizes(ctx, "sku-1")
	require.NoError(t, err)
	assert.Len(t, sizes, 4)

	require.NoError(t, f.session.AddEntry(ctx, "sku-1", "ps-1"))
	require.NoError(t, f.session.AddEntry(ctx, "sku-1", "ps-2"))
}

func TestSession_EditableWhilePackSizesLoad(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cat, seed := delegatingCatalog(t, ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	cat.EXPECT().ListPackSizes(gomock.Any(), "sku-1").DoAndReturn(
		func(ctx context.Context, skuID string) ([]scheme.PackSize, error) {
			close(started)
			<-release
			return seed.ListPackSizes(ctx, skuID)
		}).Times(1)

	f := newSessionFixture(t, cat)
	s := f.session

	added := make(chan error, 1)
	go func() { added <- s.AddEntry(ctx, "sku-1", "ps-2") }()
	<-started

	edited := make(chan struct{})
	go func() {
		s.Update(scheme.FormPatch{Name: ptr.Of("Renamed")})
		close(edited)
	}()
	select {
	case <-edited:
	case <-time.After(time.Second):
		t.Fatal("draft edit blocked by pack size load")
	}
	assert.Equal(t, "Renamed", s.Draft().Form().Name)
	assert.Equal(t, 0, s.Draft().EntryCount())

	close(release)
	require.NoError(t, <-added)
	assert.Equal(t, 1, s.Draft().EntryCount())
	assert.Equal(t, "Renamed", s.Draft().Form().Name)
}

func TestSession_SetValueType(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cat, seed := delegatingCatalog(t, ctrl)
	cat.EXPECT().ListPackSizes(gomock.Any(), gomock.Any()).DoAndReturn(seed.ListPackSizes).Times(2)

	f := newSessionFixture(t, cat)
	s := f.session

	require.NoError(t, s.AddEntry(ctx, "sku-1", "ps-2"))
	require.NoError(t, s.SetValueType(ctx, scheme.ValueTypePoints))

	assert.Equal(t, scheme.ValueTypePoints, s.Draft().ValueType())
	assert.Equal(t, 0, s.Draft().EntryCount())
	assert.Len(t, s.Catalog().SKUs, 3)

	require.NoError(t, s.AddEntry(ctx, "foc-1", "fps-1"))

	err := s.SetValueType(ctx, "coins")
	assert.True(t, errs.Is(err, scheme.ErrInvalidValueType))
	assert.Equal(t, 1, s.Draft().EntryCount())
}

func TestSession_SubmitFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t, loadCatalog(t))
	s := f.session

	s.Update(scheme.FormPatch{
		Name:      ptr.Of("Diwali Promo"),
		StartDate: ptr.Of(builder.DiwaliStart),
		EndDate:   ptr.Of(builder.DiwaliEnd),
	})
	s.SetFixedRegions([]string{"MH"})
	require.NoError(t, s.AddEntry(ctx, "sku-1", "ps-2"))
	require.NoError(t, s.UpdateEntry(0, scheme.EntryPatch{
		CouponCount:  ptr.Of(5000),
		CouponValue:  ptr.Of(-5.0),
		ExpiryDate:   ptr.Of(builder.DiwaliExpiry),
		CouponTypeID: ptr.Of("ct-1"),
	}))
	before := s.Draft()

	_, err := s.Submit(ctx, f.cmds)

	require.ErrorIs(t, err, scheme.ErrValidationFailed)
	assert.Equal(t, before.Code(), s.Draft().Code())
	assert.Equal(t, before.Form(), s.Draft().Form())
	assert.Equal(t, 0, f.store.Len())
}
