// Package routes declares HTTP routes as data so domain handlers can expose
// them without touching the mux directly.
package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
