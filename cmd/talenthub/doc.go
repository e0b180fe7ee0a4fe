// Package main hosts the TalentHub jobs API entrypoint.
//
// The service exists so the front end has a real cross-origin endpoint to
// develop against. It serves a fixed list of job postings built at startup
// and never modified:
//   - GET /           plain-text banner confirming the backend is up.
//   - GET /api/jobs   the postings as a JSON array, in registry order.
//   - GET /healthz    liveness probe.
//   - GET /metrics    Prometheus metrics (metrics.enabled).
//
// Configuration comes from Viper: defaults, an optional -config file, then
// TALENTHUB_* environment variables (TALENTHUB_SERVER_PORT, ...). A bare PORT
// variable is honored too. The default port is 5000.
//
// If the port cannot be bound the process logs the error and exits 1.
// SIGINT/SIGTERM trigger a graceful shutdown.
package main
