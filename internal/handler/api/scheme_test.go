//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/handler/api"
	resdto "scheme-console/internal/handler/dto/response"
	"scheme-console/internal/pkg/errs"
	"scheme-console/internal/usecase/commands"
	"scheme-console/internal/usecase/queries"
	"scheme-console/tests/common/builder"
	"scheme-console/tests/common/httptest"
	"scheme-console/tests/common/testutil"
	commandsmock "scheme-console/tests/mock/commands"
	queriesmock "scheme-console/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SchemeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSchemeCommands
	mockQueries  *queriesmock.MockSchemeQueries
	handler      *api.SchemeHandler
}

func (s *SchemeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSchemeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSchemeQueries(s.mockCtrl)
	s.handler = api.NewSchemeHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/schemes", s.handler.Create)
	s.router.GET("/api/schemes", s.handler.List)
	s.router.GET("/api/schemes/:id", s.handler.Get)
	s.router.DELETE("/api/schemes/:id", s.handler.Delete)
	s.router.POST("/api/schemes/:id/activate", s.handler.Activate)
	s.router.GET("/api/schemes/:id/entries/:index/regions/:code", s.handler.Resolve)
	s.router.GET("/api/schemes/:id/entries/:index/coverage", s.handler.Coverage)
}

func (s *SchemeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSchemeHandlerSuite(t *testing.T) {
	suite.Run(t, new(SchemeHandlerTestSuite))
}

type testCaseScheme struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func marked(sentinel error) error {
	return errs.Mark(errors.New("usecase failed"), sentinel)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SchemeHandlerTestSuite) TestCreate() {
	url := "/api/schemes"

	reqBody := builder.NewSchemeBuilder().WithOverride(0, 15, 2000, "GJ").BuildCreateRequestDTO()
	def, err := builder.NewSchemeBuilder().WithOverride(0, 15, 2000, "GJ").BuildDomain()
	s.Require().NoError(err)
	result := &commands.FinalizeResult{Scheme: def}

	missing := []testCaseScheme{
		{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: value_type", mutate: testutil.Field("value_type", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start_date", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: fixed_state_codes", mutate: testutil.Field("fixed_state_codes", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: sku_pack_entries", mutate: testutil.Field("sku_pack_entries", nil), expectCode: http.StatusBadRequest},
		{name: "missing entry field: sku_id", mutate: testutil.EntryField(0, "sku_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing entry field: pack_size_id", mutate: testutil.EntryField(0, "pack_size_id", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseScheme{
		{name: "unknown value_type", mutate: testutil.Field("value_type", "coins"), expectCode: http.StatusBadRequest},
		{name: "empty fixed_state_codes", mutate: testutil.Field("fixed_state_codes", []string{}), expectCode: http.StatusBadRequest},
		{name: "start_date not a date", mutate: testutil.Field("start_date", "20/10/2026"), expectCode: http.StatusBadRequest},
		{name: "expiry_date not a date", mutate: testutil.EntryField(0, "expiry_date", "soon"), expectCode: http.StatusBadRequest},
		{name: "override without regions", mutate: testutil.EntryField(0, "region_overrides", []map[string]any{{"value_type": "rupees", "value": 1}}), expectCode: http.StatusBadRequest},
		{name: "override with unknown value_type", mutate: testutil.OverrideField(0, 0, "value_type", "coins"), expectCode: http.StatusBadRequest},
		{name: "override with empty state_codes", mutate: testutil.OverrideField(0, 0, "state_codes", []string{}), expectCode: http.StatusBadRequest},
	}

	// range checks belong to scheme validation, so these reach the usecase
	passthrough := []testCaseScheme{
		{name: "negative coupon_value", mutate: testutil.EntryField(0, "coupon_value", -5), expectCode: http.StatusCreated},
		{name: "zero coupon_count", mutate: testutil.EntryField(0, "coupon_count", 0), expectCode: http.StatusCreated},
		{name: "no scheme_code", mutate: testutil.Field("scheme_code", nil), expectCode: http.StatusCreated},
	}

	s.Run("success: returns 201 Created with the stored scheme", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), "SCH-20261017-001", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, form scheme.FormData) (*commands.FinalizeResult, error) {
				s.Equal("Diwali Promo", form.Name)
				s.Equal(builder.DiwaliStart, form.StartDate)
				s.Equal([]string{"MH", "GJ"}, form.FixedStateCodes)
				s.Require().Len(form.SKUPackEntries, 1)
				s.Equal(builder.DiwaliExpiry, form.SKUPackEntries[0].ExpiryDate)
				s.Equal([]string{"GJ"}, form.SKUPackEntries[0].RegionOverrides[0].StateCodes)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateSchemeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(def.ID().String(), body.Scheme.ID)
		s.Equal("SCH-20261017-001", body.Scheme.SchemeCode)
		s.Equal("draft", body.Scheme.Status)
		s.Equal("2026-11-10", body.Scheme.SKUPackEntries[0].ExpiryDate)
		s.Empty(body.Warnings)
		s.Equal(def.ID().String(), httptest.AssertLocation(s.T(), rec, "/api/schemes"))
	})

	s.Run("success: warnings are returned alongside the scheme", func() {
		warned := &commands.FinalizeResult{
			Scheme:   def,
			Warnings: []scheme.FieldError{{Field: "skuPackEntries[0].expiryDate", Message: "outside the scheme period"}},
		}
		s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any()).Return(warned, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateSchemeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().Len(body.Warnings, 1)
		s.Equal("skuPackEntries[0].expiryDate", body.Warnings[0].Field)
	})

	s.Run("error: 400 Bad Request on malformed requests", func() {
		for _, group := range [][]testCaseScheme{missing, malformed} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				})
			}
		}
	})

	s.Run("requests checked by the usecase are forwarded", func() {
		for _, tc := range passthrough {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any()).Return(result, nil).Times(1)
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 400 Bad Request on invalid JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"name": "Diwali Promo",`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 Unprocessable Entity lists every field", func() {
		verrs := scheme.ValidationErrors{
			{Field: "name", Message: "is required"},
			{Field: "skuPackEntries[0].couponValue", Message: "must not be negative"},
		}
		s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, verrs).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.EntryField(0, "coupon_value", -5)))

		fields := httptest.AssertValidationResponse(s.T(), rec)
		s.Equal([]string{"name", "skuPackEntries[0].couponValue"}, fields)
	})

	s.Run("error: usecase failures map to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "duplicate code", err: marked(errs.ErrDuplicateSchemeCode), expectCode: http.StatusConflict, expectMsg: "Scheme code already exists"},
			{name: "code space exhausted", err: errs.Wrap(scheme.ErrCodeSpaceExhausted, "day"), expectCode: http.StatusServiceUnavailable, expectMsg: "exhausted"},
			{name: "invalid code", err: errs.Wrap(scheme.ErrInvalidSchemeCode, "code"), expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
			{name: "repository down", err: marked(errs.ErrRepositoryFailure), expectCode: http.StatusBadGateway, expectMsg: "Storage unavailable"},
			{name: "catalog down", err: marked(errs.ErrCatalogFailure), expectCode: http.StatusBadGateway, expectMsg: "Storage unavailable"},
			{name: "unexpected", err: errors.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *SchemeHandlerTestSuite) TestList() {
	url := "/api/schemes"
	items := []*queries.SchemeListItem{
		builder.NewSchemeBuilder().WithCode("SCH-20261017-002").BuildListItem(),
		builder.NewSchemeBuilder().BuildListItem(),
	}

	s.Run("success: returns every scheme", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.SchemeFilters{}).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body struct {
			Schemes []resdto.SchemeListItemResponse `json:"schemes"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Schemes, 2)
		s.Equal("SCH-20261017-002", body.Schemes[0].SchemeCode)
		s.Equal(2, body.Schemes[0].RegionCount)
		s.Equal("2026-10-20", body.Schemes[0].StartDate)
	})

	s.Run("success: passes filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.SchemeFilters) ([]*queries.SchemeListItem, error) {
				s.Require().NotNil(f.Status)
				s.Require().NotNil(f.ValueType)
				s.Equal(scheme.StatusActive, *f.Status)
				s.Equal(scheme.ValueTypePoints, *f.ValueType)
				return []*queries.SchemeListItem{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=active&value_type=points", nil)

		var body struct {
			Schemes []resdto.SchemeListItemResponse `json:"schemes"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Schemes)
	})

	s.Run("error: 400 Bad Request on unknown filters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=paused", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?value_type=coins", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid value type")
	})
}

// ================================================================================
// TestGet / TestDelete / TestActivate
// ================================================================================

func (s *SchemeHandlerTestSuite) TestGet() {
	view := builder.NewSchemeBuilder().BuildViewQuery()

	s.Run("success: returns the scheme", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schemes/"+view.ID.String(), nil)

		var body resdto.SchemeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal([]string{"Maharashtra", "Gujarat"}, body.FixedStateNames)
		s.Equal("Coca Cola", body.SKUPackEntries[0].SKUName)
		s.NotNil(body.SKUPackEntries[0].RegionOverrides)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schemes/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, marked(errs.ErrSchemeNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schemes/"+uuid.NewString(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Scheme not found")
	})
}

func (s *SchemeHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/schemes/"+id.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(marked(errs.ErrSchemeNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/schemes/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Scheme not found")
	})
}

func (s *SchemeHandlerTestSuite) TestActivate() {
	def, err := builder.NewSchemeBuilder().BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(def.Activate(builder.DiwaliStart))
	url := "/api/schemes/" + def.ID().String() + "/activate"

	s.Run("success: returns the activated scheme", func() {
		s.mockCommands.EXPECT().Activate(gomock.Any(), def.ID()).Return(def, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.SchemeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("active", body.Status)
		s.Require().NotNil(body.ActivatedAt)
		s.Equal(builder.DiwaliStart.Unix(), *body.ActivatedAt)
	})

	s.Run("error: 409 Conflict when expired", func() {
		s.mockCommands.EXPECT().Activate(gomock.Any(), def.ID()).Return(nil, scheme.ErrSchemeExpired).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Scheme has expired")
	})

	s.Run("error: hints are returned in detail", func() {
		hinted := errs.WithHint(scheme.ErrSchemeExpired, "create a new scheme with a later end date")
		s.mockCommands.EXPECT().Activate(gomock.Any(), def.ID()).Return(nil, hinted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body struct {
			Detail struct {
				Hints []string `json:"hints"`
			} `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal([]string{"create a new scheme with a later end date"}, body.Detail.Hints)
	})
}

// ================================================================================
// TestResolve / TestCoverage
// ================================================================================

func (s *SchemeHandlerTestSuite) TestResolve() {
	id := uuid.New()
	base := "/api/schemes/" + id.String() + "/entries/"

	s.Run("success: returns the effective value", func() {
		v := &scheme.EffectiveValue{RegionCode: "GJ", ValueType: scheme.ValueTypeRupees, Value: 15, CouponCount: 2000, Source: scheme.SourceOverride}
		s.mockQueries.EXPECT().Resolve(gomock.Any(), id, 0, "gj").Return(v, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"0/regions/gj", nil)

		var body resdto.EffectiveValueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.EffectiveValueResponse{RegionCode: "GJ", ValueType: "rupees", Value: 15, CouponCount: 2000, Source: "override"}, body)
	})

	s.Run("error: 404 Not Found for uncovered regions and entries", func() {
		s.mockQueries.EXPECT().Resolve(gomock.Any(), id, 0, "KA").Return(nil, errs.Wrap(scheme.ErrRegionNotCovered, "KA")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"0/regions/KA", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Region not covered")

		s.mockQueries.EXPECT().Resolve(gomock.Any(), id, 4, "MH").Return(nil, errs.Wrap(scheme.ErrIndexOutOfRange, "entry 4")).Times(1)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"4/regions/MH", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Entry not found")
	})

	s.Run("error: 400 Bad Request on malformed index", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"first/regions/MH", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid entry index")
	})
}

func (s *SchemeHandlerTestSuite) TestCoverage() {
	id := uuid.New()
	view := &queries.CoverageView{
		SchemeID:   id,
		EntryIndex: 0,
		SKUID:      "sku-1",
		PackSizeID: "ps-2",
		Values: []scheme.EffectiveValue{
			{RegionCode: "MH", ValueType: scheme.ValueTypeRupees, Value: 10, CouponCount: 5000, Source: scheme.SourceEntryDefault},
			{RegionCode: "GJ", ValueType: scheme.ValueTypeRupees, Value: 15, CouponCount: 2000, Source: scheme.SourceOverride},
		},
	}
	s.mockQueries.EXPECT().Coverage(gomock.Any(), id, 0).Return(view, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schemes/"+id.String()+"/entries/0/coverage", nil)

	var body resdto.CoverageResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(id.String(), body.SchemeID)
	s.Require().Len(body.Values, 2)
	s.Equal("entry_default", body.Values[0].Source)
	s.Equal(15.0, body.Values[1].Value)
}
