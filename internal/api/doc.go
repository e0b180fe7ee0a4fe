// Package api hosts the HTTP router, middleware, and handlers that serve the
// job registry to the front end. Routes:
//   - GET / returns a plain-text liveness banner.
//   - GET /api/jobs returns every posting as a JSON array.
//   - GET /healthz for container probes.
//   - GET /metrics for Prometheus scraping, when metrics are enabled.
//
// Every response, including router-default 404 and 405 answers, carries the
// configured Access-Control-Allow-Origin header.
package api
