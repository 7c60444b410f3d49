package server

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the query endpoints on rg (typically /v1).
//
//	GET  /locations            all location labels
//	GET  /path                 shortest route, ?start=&end=
//	GET  /nearest              nearest destinations, ?from=&k=
//	POST /routes               batch of routes
//	GET  /fragments/path       HTML answer for a route
//	GET  /fragments/nearest    HTML answer for nearest destinations
//	GET  /fragments/prompt     HTML input prompts, ?kind=path|nearest
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/locations", h.HandleLocations)
	rg.GET("/path", h.HandlePath)
	rg.GET("/nearest", h.HandleNearest)
	rg.POST("/routes", h.HandleRoutes)

	frag := rg.Group("/fragments")
	{
		frag.GET("/path", h.HandlePathFragment)
		frag.GET("/nearest", h.HandleNearestFragment)
		frag.GET("/prompt", h.HandlePromptFragment)
	}
}
