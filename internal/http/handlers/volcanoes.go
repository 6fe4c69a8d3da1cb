package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/geocoder89/volcanoes/internal/domain/volcano"
	"github.com/geocoder89/volcanoes/internal/http/middlewares"
	"github.com/geocoder89/volcanoes/internal/visibility"
	"github.com/gin-gonic/gin"
)

const (
	msgNoQueryParams     = "Invalid query parameters. Query parameters are not permitted."
	msgCountryRequired   = "Invalid query parameters. Query parameter country is required."
	msgUnknownQueryParam = "Invalid query parameters. Only country and populatedWithin are permitted."
)

type VolcanoReader interface {
	Countries(ctx context.Context) ([]string, error)
	List(ctx context.Context, filter volcano.ListFilter) ([]volcano.Summary, error)
	GetByID(ctx context.Context, id int64) (volcano.Volcano, error)
}

type VolcanoesHandler struct {
	volcanoes VolcanoReader
}

func NewVolcanoesHandler(volcanoes VolcanoReader) *VolcanoesHandler {
	return &VolcanoesHandler{volcanoes: volcanoes}
}

func (h *VolcanoesHandler) Countries(ctx *gin.Context) {
	if len(ctx.Request.URL.Query()) != 0 {
		RespondBadRequest(ctx, msgNoQueryParams, nil)
		return
	}

	countries, err := h.volcanoes.Countries(ctx.Request.Context())
	if err != nil {
		RespondInternal(ctx, err)
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, countries)
}

func (h *VolcanoesHandler) List(ctx *gin.Context) {
	query := ctx.Request.URL.Query()

	for key := range query {
		if key != "country" && key != "populatedWithin" {
			RespondBadRequest(ctx, msgUnknownQueryParam, gin.H{"param": key})
			return
		}
	}

	filter := volcano.ListFilter{Country: query.Get("country")}
	if filter.Country == "" {
		RespondBadRequest(ctx, msgCountryRequired, nil)
		return
	}

	// present but empty is rejected like any other unknown radius
	if _, ok := query["populatedWithin"]; ok {
		r, valid := volcano.ParseRadius(query.Get("populatedWithin"))
		if !valid {
			RespondBadRequest(ctx, "Invalid value for populatedWithin. Only: "+volcano.ValidRadii()+" are permitted.", nil)
			return
		}
		filter.PopulatedWithin = &r
	}

	list, err := h.volcanoes.List(ctx.Request.Context(), filter)
	if err != nil {
		RespondInternal(ctx, err)
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, list)
}

// Get exposes the population counters only to authenticated callers.
func (h *VolcanoesHandler) Get(ctx *gin.Context) {
	raw := ctx.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondVolcanoNotFound(ctx, raw)
		return
	}

	v, err := h.volcanoes.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, volcano.ErrNotFound) {
			respondVolcanoNotFound(ctx, raw)
			return
		}
		RespondInternal(ctx, err)
		return
	}

	fields := visibility.VolcanoFields(middlewares.IdentityFromContext(ctx))
	ctx.JSON(http.StatusOK, visibility.Volcano(v, fields))
}

func respondVolcanoNotFound(ctx *gin.Context, id string) {
	RespondNotFound(ctx, "Volcano with ID: "+id+" not found.")
}
