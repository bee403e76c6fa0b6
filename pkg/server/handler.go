package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"essay-feed/pkg/rss"
)

const jsonContentType = "application/json; charset=UTF-8"

// FeedBuilder renders one feed document per call
type FeedBuilder interface {
	Build(ctx context.Context) rss.Document
}

// response is a transport-neutral reply shared by the HTTP and Lambda adapters
type response struct {
	status      int
	contentType string
	body        string
}

type errorBody struct {
	Error string `json:"error"`
}

// badRequestBody is {"error":"BAD REQUEST"}
var badRequestBody = mustJSON(errorBody{Error: "BAD REQUEST"})

// respond builds the feed for GET and rejects every other method
func respond(ctx context.Context, builder FeedBuilder, method string) response {
	if method != http.MethodGet {
		return response{
			status:      http.StatusBadRequest,
			contentType: jsonContentType,
			body:        badRequestBody,
		}
	}

	return response{
		status:      http.StatusOK,
		contentType: rss.ContentType,
		body:        builder.Build(ctx).String(),
	}
}

// Handler serves the feed over net/http
type Handler struct {
	builder FeedBuilder
}

// NewHandler creates an HTTP handler around builder
func NewHandler(builder FeedBuilder) *Handler {
	return &Handler{builder: builder}
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := respond(r.Context(), h.builder, r.Method)

	w.Header().Set("Content-Type", resp.contentType)
	w.WriteHeader(resp.status)
	if _, err := w.Write([]byte(resp.body)); err != nil {
		log.Printf("Handler: failed to write response to %s: %v", r.RemoteAddr, err)
	}
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
