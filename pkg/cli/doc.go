// Package cli provides the fakeapi command-line interface.
//
// Every command runs the full in-process stack: typed API service, dispatch
// client, simulated backend, record store and the configured key-value
// backend. Nothing listens on the network.
//
// Commands:
//   - users register|login|list|get|update|delete
//   - inventory list|get|add|update|delete
//   - reset: remove every record and restart ids at 1
//   - stats: show collection sizes and the highest issued ids
//
// Guarded commands authenticate with --token, or with the configured token
// when the flag is absent.
package cli
