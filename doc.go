// Package lvroute answers routing questions over a directed, weighted map
// of named locations: the cheapest path between two places and the closest
// destinations from one.
//
// Packages:
//
//	hashmap/   separate-chaining associative map used as the vertex index
//	core/      Graph, Vertex and Edge types with thread-safe mutation
//	dijkstra/  single-source shortest paths with deterministic tie-breaks
//	query/     graph snapshot publishing, routes, nearest destinations, metrics
//	dotfile/   edge-list DOT map parser and loader
//	builder/   deterministic fixture graphs (path, cycle, star, grid, random)
//	render/    HTML prompts and response fragments
//	server/    gin HTTP API and HTML front end
//	reload/    fsnotify-driven map hot reload
//	config/    YAML configuration with validation
//	logging/   slog handler setup
//	cmd/lvroute the CLI: path, nearest, locations, serve
//
// Quick example:
//
//	Union South ──1──▶ CS & Statistics ──2──▶ AOSS
//	     │
//	     └────5──▶ Memorial Union
//
//	lvroute path --map maps/campus.dot "Union South" "Atmospheric, Oceanic and Space Sciences"
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
package lvroute
