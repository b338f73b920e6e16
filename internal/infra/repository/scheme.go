package repository

import (
	"context"
	"log/slog"
	"time"

	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/infra"
	"scheme-console/internal/pkg/metrics"
	"scheme-console/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	insertSchemeSQL = `
INSERT INTO schemes (
    id, scheme_code, name, description, value_type, start_date, end_date,
    fixed_state_codes, fixed_state_names, status, activated_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	insertEntrySQL = `
INSERT INTO scheme_entries (
    scheme_id, position, sku_id, sku_name, pack_size_id, pack_size_label,
    coupon_count, coupon_value, expiry_date, coupon_type_id, coupon_type_name
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

	insertOverrideSQL = `
INSERT INTO scheme_region_overrides (
    entry_id, position, state_codes, state_names, value_type, value, coupon_count
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectSchemesSQL = `
SELECT id, scheme_code, name, description, value_type, start_date, end_date,
       fixed_state_codes, fixed_state_names, status, activated_at, created_at, updated_at
FROM schemes`

	selectEntriesSQL = `
SELECT id, scheme_id, sku_id, sku_name, pack_size_id, pack_size_label,
       coupon_count, coupon_value, expiry_date, coupon_type_id, coupon_type_name
FROM scheme_entries
WHERE scheme_id = ANY($1::uuid[])
ORDER BY scheme_id, position`

	selectOverridesSQL = `
SELECT entry_id, state_codes, state_names, value_type, value, coupon_count
FROM scheme_region_overrides
WHERE entry_id = ANY($1)
ORDER BY entry_id, position`

	existsByCodeSQL = `SELECT EXISTS (SELECT 1 FROM schemes WHERE scheme_code = $1)`

	updateStatusSQL = `
UPDATE schemes SET status = $2, activated_at = $3, updated_at = $4
WHERE id = $1`

	deleteSchemeSQL = `DELETE FROM schemes WHERE id = $1`
)

type SchemeRepository struct {
	pool    *pgxpool.Pool
	tx      *txRunner
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewSchemeRepository(pool *pgxpool.Pool, m *metrics.Metrics, logger *slog.Logger) *SchemeRepository {
	return &SchemeRepository{
		pool:    pool,
		tx:      newTxRunner(pool, m, logger),
		metrics: m,
		logger:  logger,
	}
}

// Save writes the scheme, its entries and their overrides in one transaction.
func (r *SchemeRepository) Save(ctx context.Context, def *scheme.Definition) error {
	defer r.metrics.TrackDBOperation("scheme_save")(time.Now())

	err := r.tx.Within(ctx, "scheme_save", writeTx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.Exec(ctx, insertSchemeSQL,
			def.ID(),
			def.SchemeCode(),
			def.Name(),
			def.Description(),
			string(def.ValueType()),
			ptr.DateToPgtype(def.StartDate()),
			ptr.DateToPgtype(def.EndDate()),
			def.FixedStateCodes(),
			nonNil(def.FixedStateNames()),
			string(def.Status()),
			ptr.TimeToPgtype(def.ActivatedAt()),
			def.CreatedAt(),
			def.UpdatedAt(),
		); err != nil {
			return err
		}

		for i, e := range def.SKUPackEntries() {
			var entryID int64
			if err := tx.QueryRow(ctx, insertEntrySQL,
				def.ID(),
				i,
				e.SKUID,
				e.SKUName,
				e.PackSizeID,
				e.PackSizeLabel,
				e.CouponCount,
				e.CouponValue,
				ptr.DateToPgtype(e.ExpiryDate),
				e.CouponTypeID,
				e.CouponTypeName,
			).Scan(&entryID); err != nil {
				return err
			}

			for j, o := range e.RegionOverrides {
				if _, err := tx.Exec(ctx, insertOverrideSQL,
					entryID,
					j,
					o.StateCodes,
					nonNil(o.StateNames),
					string(o.ValueType),
					o.Value,
					o.CouponCount,
				); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "scheme already exists", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to save scheme", err)
	}
	return nil
}

func (r *SchemeRepository) List(ctx context.Context) ([]*scheme.Definition, error) {
	defer r.metrics.TrackDBOperation("scheme_list")(time.Now())

	defs, err := r.load(ctx, selectSchemesSQL+" ORDER BY created_at, id")
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list schemes", err)
	}
	return defs, nil
}

func (r *SchemeRepository) FindByID(ctx context.Context, id uuid.UUID) (*scheme.Definition, error) {
	defer r.metrics.TrackDBOperation("scheme_find")(time.Now())

	defs, err := r.load(ctx, selectSchemesSQL+" WHERE id = $1", id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find scheme", err)
	}
	if len(defs) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "scheme not found", pgx.ErrNoRows)
	}
	return defs[0], nil
}

func (r *SchemeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, existsByCodeSQL, code).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to check scheme code", err)
	}
	return exists, nil
}

func (r *SchemeRepository) UpdateStatus(ctx context.Context, def *scheme.Definition) error {
	defer r.metrics.TrackDBOperation("scheme_update_status")(time.Now())

	tag, err := r.pool.Exec(ctx, updateStatusSQL,
		def.ID(),
		string(def.Status()),
		ptr.TimeToPgtype(def.ActivatedAt()),
		def.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update scheme status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "scheme not found", nil)
	}
	return nil
}

// Delete removes the scheme; entries and overrides go with it through ON DELETE CASCADE.
func (r *SchemeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.metrics.TrackDBOperation("scheme_delete")(time.Now())

	tag, err := r.pool.Exec(ctx, deleteSchemeSQL, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete scheme", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "scheme not found", nil)
	}
	return nil
}

type schemeRow struct {
	id          uuid.UUID
	code        string
	name        string
	description string
	valueType   string
	startDate   pgtype.Date
	endDate     pgtype.Date
	fixedCodes  []string
	fixedNames  []string
	status      string
	activatedAt pgtype.Timestamptz
	createdAt   time.Time
	updatedAt   time.Time
	entries     []scheme.SKUPackEntry
}

// load reads schemes and their children with three queries against one
// snapshot so the aggregate is consistent.
func (r *SchemeRepository) load(ctx context.Context, query string, args ...any) ([]*scheme.Definition, error) {
	var rows []*schemeRow
	err := r.tx.Within(ctx, "scheme_load", snapshotTx, func(ctx context.Context, tx DBTX) error {
		var err error
		if rows, err = r.scanSchemes(ctx, tx, query, args...); err != nil || len(rows) == 0 {
			return err
		}
		return r.attachEntries(ctx, tx, rows)
	})
	if err != nil {
		return nil, err
	}

	defs := make([]*scheme.Definition, 0, len(rows))
	for _, row := range rows {
		defs = append(defs, row.toDomain())
	}
	return defs, nil
}

func (r *SchemeRepository) scanSchemes(ctx context.Context, db DBTX, query string, args ...any) ([]*schemeRow, error) {
	rs, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var out []*schemeRow
	for rs.Next() {
		row := &schemeRow{}
		if err := rs.Scan(
			&row.id,
			&row.code,
			&row.name,
			&row.description,
			&row.valueType,
			&row.startDate,
			&row.endDate,
			&row.fixedCodes,
			&row.fixedNames,
			&row.status,
			&row.activatedAt,
			&row.createdAt,
			&row.updatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rs.Err()
}

func (r *SchemeRepository) attachEntries(ctx context.Context, db DBTX, rows []*schemeRow) error {
	byScheme := make(map[uuid.UUID]*schemeRow, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		byScheme[row.id] = row
		ids = append(ids, row.id.String())
	}

	rs, err := db.Query(ctx, selectEntriesSQL, ids)
	if err != nil {
		return err
	}
	type entryRef struct {
		row   *schemeRow
		index int
	}
	entries := make(map[int64]entryRef)
	var entryIDs []int64
	for rs.Next() {
		var (
			entryID  int64
			schemeID uuid.UUID
			e        scheme.SKUPackEntry
			expiry   pgtype.Date
		)
		if err := rs.Scan(
			&entryID,
			&schemeID,
			&e.SKUID,
			&e.SKUName,
			&e.PackSizeID,
			&e.PackSizeLabel,
			&e.CouponCount,
			&e.CouponValue,
			&expiry,
			&e.CouponTypeID,
			&e.CouponTypeName,
		); err != nil {
			rs.Close()
			return err
		}
		e.ExpiryDate = ptr.DateFromPgtype(expiry)
		e.RegionOverrides = []scheme.RegionOverride{}
		row := byScheme[schemeID]
		row.entries = append(row.entries, e)
		entries[entryID] = entryRef{row: row, index: len(row.entries) - 1}
		entryIDs = append(entryIDs, entryID)
	}
	rs.Close()
	if err := rs.Err(); err != nil {
		return err
	}
	if len(entryIDs) == 0 {
		return nil
	}

	ors, err := db.Query(ctx, selectOverridesSQL, entryIDs)
	if err != nil {
		return err
	}
	defer ors.Close()
	for ors.Next() {
		var (
			entryID   int64
			o         scheme.RegionOverride
			valueType string
		)
		if err := ors.Scan(&entryID, &o.StateCodes, &o.StateNames, &valueType, &o.Value, &o.CouponCount); err != nil {
			return err
		}
		o.ValueType = scheme.ValueType(valueType)
		ref := entries[entryID]
		e := &ref.row.entries[ref.index]
		e.RegionOverrides = append(e.RegionOverrides, o)
	}
	return ors.Err()
}

func (row *schemeRow) toDomain() *scheme.Definition {
	entries := row.entries
	if entries == nil {
		entries = []scheme.SKUPackEntry{}
	}
	form := scheme.FormData{
		Name:            row.name,
		Description:     row.description,
		ValueType:       scheme.ValueType(row.valueType),
		StartDate:       ptr.DateFromPgtype(row.startDate),
		EndDate:         ptr.DateFromPgtype(row.endDate),
		FixedStateCodes: row.fixedCodes,
		SKUPackEntries:  entries,
	}
	return scheme.ReconstructDefinition(
		row.id,
		row.code,
		form,
		row.fixedNames,
		scheme.Status(row.status),
		ptr.TimeFromPgtype(row.activatedAt),
		row.createdAt,
		row.updatedAt,
	)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
