// Package server exposes a query.Service over HTTP with gin.
//
// JSON endpoints live under /v1, HTML fragments under /v1/fragments, and
// /healthz and /metrics sit at the root. Every response carries an
// X-Request-ID header.
package server

import "github.com/katalvlaran/lvroute/query"

// PathRequest binds GET /v1/path and /v1/fragments/path.
type PathRequest struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

// NearestRequest binds GET /v1/nearest and /v1/fragments/nearest.
// A missing k selects the service's NearestLimit.
type NearestRequest struct {
	From string `form:"from" binding:"required"`
	K    *int   `form:"k" binding:"omitempty,gte=0,lte=1000"`
}

func (r NearestRequest) limit(def int) int {
	if r.K == nil {
		return def
	}
	return *r.K
}

// PairRequest is one entry of a RoutesRequest.
type PairRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// RoutesRequest is the body of POST /v1/routes.
type RoutesRequest struct {
	Pairs []PairRequest `json:"pairs" binding:"required,min=1,max=100,dive"`
}

// RoutesResponse answers POST /v1/routes in request order.
type RoutesResponse struct {
	Routes []query.Route `json:"routes"`
}

// LocationsResponse answers GET /v1/locations.
type LocationsResponse struct {
	Locations []string `json:"locations"`
	Count     int      `json:"count"`
}

// NearestResponse answers GET /v1/nearest.
type NearestResponse struct {
	From         string              `json:"from"`
	Destinations []query.Destination `json:"destinations"`
}

// HealthResponse answers GET /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Vertices int    `json:"vertices"`
	Edges    int    `json:"edges"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
