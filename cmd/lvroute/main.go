// Command lvroute answers shortest-path and nearest-destination queries over
// a location map, from the command line or over HTTP.
//
//	lvroute --map maps/campus.dot path "Union South" "Memorial Union"
//	lvroute --map maps/lecture.dot nearest D -k 3
//	lvroute --config maps/lvroute.yaml serve
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
