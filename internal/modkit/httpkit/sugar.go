package httpkit

import "net/http"

// Get registers a body-less handler that returns data or an error
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Head registers a body-less handler under HEAD
func Head(r Router, path string, h func(*http.Request) (any, error)) {
	r.Head(path, Call(h))
}

// GetResponse registers a handler that builds its own Response,
// for endpoints that need full control of status and headers
func GetResponse(r Router, path string, h func(*http.Request) Response) {
	r.Get(path, Handle(h))
}
