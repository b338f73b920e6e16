package api

import (
	"net/http"
	"strconv"

	"scheme-console/internal/domain/scheme"
	reqdto "scheme-console/internal/handler/dto/request"
	resdto "scheme-console/internal/handler/dto/response"
	"scheme-console/internal/handler/httperr"
	"scheme-console/internal/usecase/commands"
	"scheme-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SchemeHandler struct {
	cmds commands.SchemeCommands
	q    queries.SchemeQueries
}

func NewSchemeHandler(cmds commands.SchemeCommands, q queries.SchemeQueries) *SchemeHandler {
	return &SchemeHandler{cmds: cmds, q: q}
}

// @Summary Create scheme
// @Description Validate a scheme form and persist it as a draft
// @Tags schemes
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSchemeRequest true "Create scheme request"
// @Success 201 {object} resdto.CreateSchemeResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/schemes [post]
func (h *SchemeHandler) Create(c *gin.Context) {
	var req reqdto.CreateSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	code, form, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Finalize(c.Request.Context(), code, form)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/schemes/"+result.Scheme.ID().String())
	c.JSON(http.StatusCreated, resdto.CreateSchemeResponse{
		Scheme:   resdto.FromDefinition(result.Scheme),
		Warnings: resdto.FromFieldErrors(result.Warnings),
	})
}

// @Summary List schemes
// @Description List schemes newest first, optionally filtered by status and value type
// @Tags schemes
// @Produce json
// @Param status query string false "draft, active or expired"
// @Param value_type query string false "rupees or points"
// @Success 200 {array} resdto.SchemeListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/schemes [get]
func (h *SchemeHandler) List(c *gin.Context) {
	var filters queries.SchemeFilters
	if v := c.Query("status"); v != "" {
		st, err := scheme.NewStatus(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
			return
		}
		filters.Status = &st
	}
	if v := c.Query("value_type"); v != "" {
		vt, err := scheme.NewValueType(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid value type", nil)
			return
		}
		filters.ValueType = &vt
	}
	items, err := h.q.List(c.Request.Context(), filters)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schemes": resdto.FromSchemeList(items)})
}

// @Summary Get scheme
// @Description Get a scheme with entries and overrides
// @Tags schemes
// @Produce json
// @Param id path string true "Scheme ID"
// @Success 200 {object} resdto.SchemeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/schemes/{id} [get]
func (h *SchemeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSchemeView(view))
}

// @Summary Delete scheme
// @Description Delete a scheme with its entries and overrides
// @Tags schemes
// @Param id path string true "Scheme ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/schemes/{id} [delete]
func (h *SchemeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Activate scheme
// @Description Mark a scheme as activated; it reports active from its start date
// @Tags schemes
// @Produce json
// @Param id path string true "Scheme ID"
// @Success 200 {object} resdto.SchemeResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/schemes/{id}/activate [post]
func (h *SchemeHandler) Activate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	def, err := h.cmds.Activate(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDefinition(def))
}

// @Summary Resolve effective value
// @Description Effective coupon value and count of one entry in one region
// @Tags schemes
// @Produce json
// @Param id path string true "Scheme ID"
// @Param index path int true "Entry index"
// @Param code path string true "Region code"
// @Success 200 {object} resdto.EffectiveValueResponse
// @Failure 404 {object} map[string]string
// @Router /api/schemes/{id}/entries/{index}/regions/{code} [get]
func (h *SchemeHandler) Resolve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	index, ok := parseIndex(c)
	if !ok {
		return
	}
	v, err := h.q.Resolve(c.Request.Context(), id, index, c.Param("code"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEffectiveValue(v))
}

// @Summary Entry coverage
// @Description Effective value of every fixed region for one entry
// @Tags schemes
// @Produce json
// @Param id path string true "Scheme ID"
// @Param index path int true "Entry index"
// @Success 200 {object} resdto.CoverageResponse
// @Failure 404 {object} map[string]string
// @Router /api/schemes/{id}/entries/{index}/coverage [get]
func (h *SchemeHandler) Coverage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	index, ok := parseIndex(c)
	if !ok {
		return
	}
	v, err := h.q.Coverage(c.Request.Context(), id, index)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoverageView(v))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func parseIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid entry index", nil)
		return 0, false
	}
	return index, true
}
