package server

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/lvroute/query"
	"github.com/katalvlaran/lvroute/render"
)

// Handlers holds the dependencies shared by every endpoint.
type Handlers struct {
	svc    *query.Service
	logger *slog.Logger
	title  string
}

// NewHandlers returns handlers answering from svc. A nil logger means
// slog.Default().
func NewHandlers(svc *query.Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handlers{svc: svc, logger: logger, title: "lvroute"}
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	st := h.svc.Graph().Stats()
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Vertices: st.VertexCount,
		Edges:    st.EdgeCount,
	})
}

// HandleLocations handles GET /v1/locations.
func (h *Handlers) HandleLocations(c *gin.Context) {
	locs := h.svc.Locations()
	c.JSON(http.StatusOK, LocationsResponse{Locations: locs, Count: len(locs)})
}

// HandlePath handles GET /v1/path?start=&end=.
//
// An unreachable destination is answered with 200 and status "no_path".
func (h *Handlers) HandlePath(c *gin.Context) {
	var req PathRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	r, err := h.svc.Route(c.Request.Context(), req.Start, req.End)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// HandleNearest handles GET /v1/nearest?from=&k=.
func (h *Handlers) HandleNearest(c *gin.Context) {
	var req NearestRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	ds, err := h.svc.Nearest(c.Request.Context(), req.From, req.limit(h.svc.NearestLimit()))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, NearestResponse{From: req.From, Destinations: ds})
}

// HandleRoutes handles POST /v1/routes.
func (h *Handlers) HandleRoutes(c *gin.Context) {
	var req RoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	pairs := make([]query.Pair, len(req.Pairs))
	for i, p := range req.Pairs {
		pairs[i] = query.Pair{Start: p.Start, End: p.End}
	}
	rs, err := h.svc.Routes(c.Request.Context(), pairs)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, RoutesResponse{Routes: rs})
}

// HandlePathFragment handles GET /v1/fragments/path. Errors are rendered
// into the fragment; the status code still reflects them.
func (h *Handlers) HandlePathFragment(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	r, err := h.svc.Route(c.Request.Context(), start, end)
	html, rerr := render.ShortestPathResponse(start, end, r, err)
	h.html(c, statusOf(err), html, rerr)
}

// HandleNearestFragment handles GET /v1/fragments/nearest. Binding errors
// are rendered into the fragment with status 400.
func (h *Handlers) HandleNearestFragment(c *gin.Context) {
	var req NearestRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.log(c).Warn("invalid request", "error", err)
		html, rerr := render.NearestResponse(req.From, nil, err)
		h.html(c, http.StatusBadRequest, html, rerr)
		return
	}

	labels, err := h.svc.NearestLabels(c.Request.Context(), req.From, req.limit(h.svc.NearestLimit()))
	html, rerr := render.NearestResponse(req.From, labels, err)
	h.html(c, statusOf(err), html, rerr)
}

// HandlePromptFragment handles GET /v1/fragments/prompt?kind=path|nearest.
// Without kind both prompts are returned.
func (h *Handlers) HandlePromptFragment(c *gin.Context) {
	var (
		html template.HTML
		err  error
	)
	switch c.Query("kind") {
	case "path":
		html, err = render.ShortestPathPrompt()
	case "nearest":
		html, err = render.NearestPrompt()
	case "":
		var p, n template.HTML
		if p, err = render.ShortestPathPrompt(); err == nil {
			n, err = render.NearestPrompt()
		}
		html = p + n
	default:
		h.badRequest(c, errors.New("kind must be path or nearest"))
		return
	}
	h.html(c, http.StatusOK, html, err)
}

// HandleIndex handles GET / with a page that drives the fragment endpoints.
func (h *Handlers) HandleIndex(c *gin.Context) {
	html, err := render.Page(h.title)
	h.html(c, http.StatusOK, html, err)
}

func (h *Handlers) html(c *gin.Context, status int, html template.HTML, err error) {
	if err != nil {
		h.log(c).Error("render failed", "error", err)
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(html))
}

func (h *Handlers) badRequest(c *gin.Context, err error) {
	h.log(c).Warn("invalid request", "error", err)
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
}

func (h *Handlers) fail(c *gin.Context, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.log(c).Error("query failed", "error", err)
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: codeOf(err)})
}

func (h *Handlers) log(c *gin.Context) *slog.Logger {
	return h.logger.With("request_id", c.GetString(requestIDKey))
}

func statusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, query.ErrEmptyLocation), errors.Is(err, query.ErrNegativeLimit):
		return http.StatusBadRequest
	case errors.Is(err, query.ErrLocationNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func codeOf(err error) string {
	switch {
	case errors.Is(err, query.ErrEmptyLocation):
		return "INVALID_LOCATION"
	case errors.Is(err, query.ErrNegativeLimit):
		return "INVALID_LIMIT"
	case errors.Is(err, query.ErrLocationNotFound):
		return "LOCATION_NOT_FOUND"
	case errors.Is(err, context.DeadlineExceeded):
		return "SEARCH_TIMEOUT"
	default:
		return "INTERNAL"
	}
}
