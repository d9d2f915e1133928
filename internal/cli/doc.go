// Package cli provides the interactive cityride terminal client.
//
// It wires configuration, the key-value store, the mock auth gateway, the
// session/theme stores, and the ticket ledger into an interactive REPL.
// Typical flow: restore persisted state, then execute user commands.
//
// Key features:
//   - Login / Register / Logout against the demo backend
//   - Profile display and partial updates
//   - Theme selection (light/dark/system) with palette preview
//   - Route search, ticket booking, ticket listing
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
