// Package cli provides the interactive task manager command-line client.
//
// It wires configuration, a backend (local store or remote gRPC API) and an
// interactive REPL. In remote mode a background watcher probes the server
// and shows online/offline in the prompt.
//
// Key features:
//   - Login / Logout / WhoAmI
//   - Add tasks, list all tasks or only your own
//   - Register users, generate and show reports (admin only)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher and runREPL for details.
package cli
