//go:build unit

package memstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/infra"
	"scheme-console/internal/infra/memstore"
	"scheme-console/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *memstore.SchemeStore {
	return memstore.NewSchemeStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mustBuild(t *testing.T, b *builder.SchemeBuilder) *scheme.Definition {
	t.Helper()
	def, err := b.BuildDomain()
	require.NoError(t, err)
	return def
}

func TestSchemeStore_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	def := mustBuild(t, builder.NewSchemeBuilder())

	require.NoError(t, s.Save(ctx, def))

	got, err := s.FindByID(ctx, def.ID())
	require.NoError(t, err)
	assert.Equal(t, def.SchemeCode(), got.SchemeCode())
	if diff := cmp.Diff(def.Form(), got.Form(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stored form mismatch (-want +got):\n%s", diff)
	}

	exists, err := s.ExistsByCode(ctx, def.SchemeCode())
	require.NoError(t, err)
	assert.True(t, exists)

	t.Run("duplicate code", func(t *testing.T) {
		dup := mustBuild(t, builder.NewSchemeBuilder())
		err := s.Save(ctx, dup)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := s.FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestSchemeStore_Isolation(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	def := mustBuild(t, builder.NewSchemeBuilder())
	require.NoError(t, s.Save(ctx, def))

	require.NoError(t, def.Activate(builder.DiwaliStart))

	got, err := s.FindByID(ctx, def.ID())
	require.NoError(t, err)
	assert.Nil(t, got.ActivatedAt())
	assert.Equal(t, scheme.StatusDraft, got.Status())
}

func TestSchemeStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	def := mustBuild(t, builder.NewSchemeBuilder())
	require.NoError(t, s.Save(ctx, def))

	require.NoError(t, def.Activate(builder.DiwaliStart))
	require.NoError(t, s.UpdateStatus(ctx, def))

	got, err := s.FindByID(ctx, def.ID())
	require.NoError(t, err)
	assert.Equal(t, scheme.StatusActive, got.Status())
	require.NotNil(t, got.ActivatedAt())

	other := mustBuild(t, builder.NewSchemeBuilder().WithCode("SCH-20261017-009"))
	assert.True(t, infra.IsKind(s.UpdateStatus(ctx, other), infra.KindNotFound))
}

func TestSchemeStore_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	codes := []string{"SCH-20261017-001", "SCH-20261017-002", "SCH-20261017-003"}
	ids := make([]uuid.UUID, 0, len(codes))
	for _, c := range codes {
		def := mustBuild(t, builder.NewSchemeBuilder().WithCode(c))
		require.NoError(t, s.Save(ctx, def))
		ids = append(ids, def.ID())
	}

	require.NoError(t, s.Delete(ctx, ids[1]))
	assert.True(t, infra.IsKind(s.Delete(ctx, ids[1]), infra.KindNotFound))

	list, err := s.List(ctx)
	require.NoError(t, err)
	got := make([]string, 0, len(list))
	for _, d := range list {
		got = append(got, d.SchemeCode())
	}
	assert.Equal(t, []string{codes[0], codes[2]}, got)

	exists, err := s.ExistsByCode(ctx, codes[1])
	require.NoError(t, err)
	assert.False(t, exists)
}
