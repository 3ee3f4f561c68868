// Package http exposes the homepage content over HTTP.
//
// Routes:
//   - GET|HEAD /api/profile: the normalised content document, never cached
//   - GET /api/photos: deprecated, always an empty list
//   - GET /healthz: liveness probe
//
// Host applications can mount Handler.Routes on their own mux as needed.
package http
