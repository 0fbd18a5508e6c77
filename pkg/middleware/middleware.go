// Package middleware provides the HTTP middleware stack: request logging,
// CORS, and ordered composition.
package middleware

import "net/http"

// Func wraps a handler with cross-cutting behavior.
type Func = func(http.Handler) http.Handler

// System is an ordered middleware stack. The first Func added is the
// outermost wrapper.
type System interface {
	Use(mws ...Func)
	Apply(handler http.Handler) http.Handler
}

type stack []Func

func New() System {
	return &stack{}
}

// Use appends mws in order, skipping nil entries so optional middleware can
// be passed unconditionally.
func (s *stack) Use(mws ...Func) {
	for _, m := range mws {
		if m != nil {
			*s = append(*s, m)
		}
	}
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(*s) - 1; i >= 0; i-- {
		handler = (*s)[i](handler)
	}
	return handler
}
