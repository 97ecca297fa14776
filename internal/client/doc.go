// Package client implements the client application runtime.
//
// It wires the local cache, the remote adapter, and the background refresh
// job into a single process lifecycle. The UI layer is an external consumer
// of the service interfaces; this runtime only keeps the sync machinery
// alive.
package client
