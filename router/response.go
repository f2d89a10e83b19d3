package router

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Response is the value produced by handlers and middleware: a status
// code plus whatever rendering writes to the wire.
type Response interface {
	StatusCode() int
	Render(w http.ResponseWriter) error
}

// bodyResponse is a fully materialized response: status, content type,
// and body bytes.
type bodyResponse struct {
	code        int
	contentType string
	body        []byte
}

func (r *bodyResponse) StatusCode() int {
	return r.code
}

func (r *bodyResponse) Render(w http.ResponseWriter) error {
	if r.contentType != "" {
		w.Header().Set("Content-Type", r.contentType)
	}
	w.WriteHeader(r.code)
	if len(r.body) > 0 {
		if _, err := w.Write(r.body); err != nil {
			return err
		}
	}
	return nil
}

// Body returns the response body as a string. Exposed for handlers and
// tests that inspect a response without rendering it.
func (r *bodyResponse) Body() string {
	return string(r.body)
}

// Text creates a text/plain response with the given status code.
func Text(code int, body string) Response {
	return &bodyResponse{
		code:        code,
		contentType: "text/plain; charset=utf-8",
		body:        []byte(body),
	}
}

// HTML creates a text/html response with the given status code.
func HTML(code int, body string) Response {
	return &bodyResponse{
		code:        code,
		contentType: "text/html; charset=utf-8",
		body:        []byte(body),
	}
}

// JSON encodes v and creates an application/json response with the given
// status code. If encoding fails, a 500 Internal Server Error response
// is returned instead.
func JSON(code int, v any) Response {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return Text(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
	return &bodyResponse{
		code:        code,
		contentType: "application/json",
		body:        buf.Bytes(),
	}
}

// NotFound creates the fallback response returned when no route matches.
func NotFound() Response {
	return Text(http.StatusNotFound, "Not Found")
}

// WithHeader decorates a response so the given header is set before it
// renders.
func WithHeader(resp Response, key, value string) Response {
	return &headerResponse{inner: resp, key: key, value: value}
}

type headerResponse struct {
	inner Response
	key   string
	value string
}

func (r *headerResponse) StatusCode() int {
	return r.inner.StatusCode()
}

func (r *headerResponse) Render(w http.ResponseWriter) error {
	w.Header().Set(r.key, r.value)
	return r.inner.Render(w)
}
