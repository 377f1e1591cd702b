package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"trendlab/internal/batting"
	apierrors "trendlab/internal/errors"
	"trendlab/internal/services"
)

// DataHandler handles table query requests
type DataHandler struct {
	service      *services.DataService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDataHandler creates a new data handler
func NewDataHandler(service *services.DataService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DataHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "data_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the data routes
func (h *DataHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/table", h.GetTable)
	r.Get("/table/months", h.GetMonthAggregates)
	r.Get("/seasons", h.GetSeasons)
	r.Post("/reload", h.Reload)

	return r
}

// tableFilters are the query parameters shared by the table endpoints.
type tableFilters struct {
	season    int
	months    []int
	name      string
	minPA     int
	hasSeason bool
}

func parseFilters(r *http.Request) (tableFilters, *apierrors.APIError) {
	var f tableFilters
	q := r.URL.Query()

	if raw := q.Get("season"); raw != "" {
		season, err := strconv.Atoi(raw)
		if err != nil {
			return f, apierrors.ErrValidation("season", "must be an integer year")
		}
		f.season = season
		f.hasSeason = true
	}

	if raw := q.Get("months"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			m, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return f, apierrors.ErrValidation("months", "must be a comma-separated list of integers")
			}
			f.months = append(f.months, m)
		}
	}

	f.name = q.Get("name")

	if raw := q.Get("min_pa"); raw != "" {
		minPA, err := strconv.Atoi(raw)
		if err != nil || minPA < 0 {
			return f, apierrors.ErrValidation("min_pa", "must be a non-negative integer")
		}
		f.minPA = minPA
	}

	return f, nil
}

func (h *DataHandler) filteredTable(r *http.Request) (*batting.Table, *apierrors.APIError) {
	table, err := h.service.Table()
	if err != nil {
		return nil, apierrors.ErrDataNotLoaded
	}

	f, apiErr := parseFilters(r)
	if apiErr != nil {
		return nil, apiErr
	}

	view := table
	if f.hasSeason {
		view = view.FilterSeason(f.season)
	}
	if len(f.months) > 0 {
		view = view.FilterMonths(f.months...)
	}
	if f.name != "" {
		view = view.FilterName(f.name)
	}
	if f.minPA > 0 {
		view = view.FilterMinPA(f.minPA)
	}
	return view, nil
}

// GetTable handles GET /api/table
func (h *DataHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	view, apiErr := h.filteredTable(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	h.logger.InfoContext(r.Context(), "serving table",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Int("rows", view.Len()))

	render.JSON(w, r, newTableResponse(view))
}

// GetMonthAggregates handles GET /api/table/months
func (h *DataHandler) GetMonthAggregates(w http.ResponseWriter, r *http.Request) {
	view, apiErr := h.filteredTable(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = "FWOBA"
	}

	aggs, err := view.GroupByMonth(metric)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("metric", err.Error()))
		return
	}

	render.JSON(w, r, newMonthsResponse(metric, aggs))
}

// GetSeasons handles GET /api/seasons
func (h *DataHandler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.Table()
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrDataNotLoaded)
		return
	}

	seasons := table.Seasons()
	out := make([]SeasonInfo, 0, len(seasons))
	for _, season := range seasons {
		out = append(out, SeasonInfo{
			Season: season,
			Months: table.MonthsFor(season),
		})
	}
	render.JSON(w, r, out)
}

// Reload handles POST /api/reload: rerun the pipeline and swap the table
// atomically.
func (h *DataHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Load(r.Context()); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.LoadFailedError(err))
		return
	}
	render.JSON(w, r, h.service.Status())
}
