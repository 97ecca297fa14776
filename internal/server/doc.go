// Package server wires and runs the API server's HTTP transport,
// including startup, signal handling, and graceful shutdown.
package server
