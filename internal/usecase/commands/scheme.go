package commands

import (
	"context"
	"fmt"
	"log/slog"

	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/infra"
	"scheme-console/internal/pkg/clock"
	"scheme-console/internal/pkg/config"
	"scheme-console/internal/pkg/errs"
	"scheme-console/internal/pkg/metrics"
	"scheme-console/internal/usecase/shared"

	"github.com/google/uuid"
)

type FinalizeResult struct {
	Scheme   *scheme.Definition
	Warnings []scheme.FieldError
}

type SchemeCommands interface {
	// Finalize validates form and persists it as a new draft scheme. An empty
	// code is replaced by a generated one. Nothing is written unless every
	// check passes.
	Finalize(ctx context.Context, code string, form scheme.FormData) (*FinalizeResult, error)
	Activate(ctx context.Context, id uuid.UUID) (*scheme.Definition, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type schemeCommandsImpl struct {
	repo    shared.SchemeRepository
	catalog shared.CatalogProvider
	codes   shared.SchemeCodeGenerator
	clock   clock.Clock
	cfg     config.SchemeConfig
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewSchemeCommands(
	repo shared.SchemeRepository,
	catalog shared.CatalogProvider,
	codes shared.SchemeCodeGenerator,
	clk clock.Clock,
	cfg config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) SchemeCommands {
	return &schemeCommandsImpl{
		repo:    repo,
		catalog: catalog,
		codes:   codes,
		clock:   clk,
		cfg:     cfg.Scheme,
		metrics: m,
		logger:  logger,
	}
}

func (uc *schemeCommandsImpl) Finalize(ctx context.Context, code string, form scheme.FormData) (*FinalizeResult, error) {
	code = scheme.NormalizeCode(code)
	regions, err := uc.catalog.ListRegions(ctx)
	if err != nil {
		uc.metrics.RecordFinalize("error")
		return nil, errs.Mark(errs.Wrap(err, "list regions"), errs.ErrCatalogFailure)
	}
	names := scheme.RegionNamesOf(regions)

	form = scheme.DraftFromForm(code, form).Form()
	report := scheme.Validate(form, scheme.ValidationOptions{
		KnownRegions:             names.Codes(),
		EnforceExpiryWithinRange: uc.cfg.EnforceExpiryWithinRange,
	})

	form, err = uc.checkCatalog(ctx, form, &report)
	if err != nil {
		uc.metrics.RecordFinalize("error")
		return nil, err
	}

	for _, w := range report.Warnings {
		uc.logger.Warn("scheme finalize warning", "field", w.Field, "message", w.Message)
	}

	if report.HasErrors() {
		for _, fe := range report.Errors {
			uc.metrics.RecordValidationError(fe.Field)
		}
		uc.metrics.RecordFinalize("invalid")
		return nil, report.Errors
	}

	// Codes are drawn only for submissions that will be stored.
	if code == "" {
		generated, err := uc.codes.Generate(ctx)
		if err != nil {
			uc.metrics.RecordFinalize("error")
			if errs.Is(err, scheme.ErrCodeSpaceExhausted) {
				return nil, errs.WithHint(err, "enter a scheme code manually or retry after midnight")
			}
			return nil, errs.Mark(errs.Wrap(err, "generate scheme code"), errs.ErrRepositoryFailure)
		}
		code = generated
	}

	exists, err := uc.repo.ExistsByCode(ctx, code)
	if err != nil {
		uc.metrics.RecordFinalize("error")
		return nil, errs.Mark(errs.Wrap(err, "check scheme code"), errs.ErrRepositoryFailure)
	}
	if exists {
		uc.metrics.RecordFinalize("duplicate")
		return nil, errs.WithHint(errs.Wrapf(errs.ErrDuplicateSchemeCode, "code %s", code),
			"choose another scheme code or leave it blank to generate one")
	}

	def, err := scheme.NewDefinition(uuid.Nil, code, form, names, uc.clock.Now())
	if err != nil {
		uc.metrics.RecordFinalize("invalid")
		return nil, err
	}

	if err := uc.repo.Save(ctx, def); err != nil {
		uc.metrics.RecordFinalize("error")
		return nil, infra.ToSchemeErr(err, "save scheme")
	}

	uc.metrics.RecordFinalize("created")
	uc.logger.Info("scheme finalized",
		"scheme_id", def.ID().String(),
		"scheme_code", def.SchemeCode(),
		"entries", len(form.SKUPackEntries),
		"regions", len(form.FixedStateCodes))

	return &FinalizeResult{Scheme: def, Warnings: report.Warnings}, nil
}

// checkCatalog verifies every entry against the catalog and fills display
// names from it. Only collaborator failures are returned as errors; mismatches
// are added to the report.
func (uc *schemeCommandsImpl) checkCatalog(ctx context.Context, form scheme.FormData, report *scheme.ValidationReport) (scheme.FormData, error) {
	if !form.ValueType.IsValid() || len(form.SKUPackEntries) == 0 {
		return form, nil
	}

	skus, err := uc.catalog.ListSKUs(ctx, form.ValueType)
	if err != nil {
		return form, errs.Mark(errs.Wrap(err, "list skus"), errs.ErrCatalogFailure)
	}
	couponTypes, err := uc.catalog.ListCouponTypes(ctx)
	if err != nil {
		return form, errs.Mark(errs.Wrap(err, "list coupon types"), errs.ErrCatalogFailure)
	}

	sizesBySKU := make(map[string][]scheme.PackSize)
	for i := range form.SKUPackEntries {
		e := &form.SKUPackEntries[i]
		if e.SKUID == "" {
			continue
		}

		sku, ok := shared.FindSKU(skus, e.SKUID)
		if !ok {
			report.Add(scheme.EntryField(i, "skuId"), fmt.Sprintf("sku %s is not in the %s catalog", e.SKUID, form.ValueType))
			continue
		}
		e.SKUName = sku.Name

		sizes, cached := sizesBySKU[e.SKUID]
		if !cached {
			sizes, err = uc.catalog.ListPackSizes(ctx, e.SKUID)
			if err != nil {
				return form, errs.Mark(errs.Wrapf(err, "list pack sizes for %s", e.SKUID), errs.ErrCatalogFailure)
			}
			sizesBySKU[e.SKUID] = sizes
		}
		if e.PackSizeID != "" {
			if ps, ok := shared.FindPackSize(sizes, e.PackSizeID); ok {
				e.PackSizeLabel = ps.Label
			} else {
				report.Add(scheme.EntryField(i, "packSizeId"), fmt.Sprintf("pack size %s does not belong to sku %s", e.PackSizeID, e.SKUID))
			}
		}

		if e.CouponTypeID != "" {
			if ct, ok := shared.FindCouponType(couponTypes, e.CouponTypeID); ok {
				e.CouponTypeName = ct.Name
			} else {
				report.Add(scheme.EntryField(i, "couponTypeId"), fmt.Sprintf("unknown coupon type %s", e.CouponTypeID))
			}
		}
	}
	return form, nil
}

func (uc *schemeCommandsImpl) Activate(ctx context.Context, id uuid.UUID) (*scheme.Definition, error) {
	def, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		uc.metrics.RecordActivate("error")
		return nil, infra.ToSchemeErr(err, "find scheme")
	}

	if err := def.Activate(uc.clock.Now()); err != nil {
		uc.metrics.RecordActivate("rejected")
		if errs.Is(err, scheme.ErrSchemeExpired) {
			return nil, errs.WithHint(err, "create a new scheme with a later end date")
		}
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, def); err != nil {
		uc.metrics.RecordActivate("error")
		return nil, infra.ToSchemeErr(err, "update scheme status")
	}

	uc.metrics.RecordActivate("activated")
	uc.logger.Info("scheme activated", "scheme_id", id.String(), "status", def.Status().String())
	return def, nil
}

func (uc *schemeCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return infra.ToSchemeErr(err, "delete scheme")
	}
	uc.logger.Info("scheme deleted", "scheme_id", id.String())
	return nil
}
