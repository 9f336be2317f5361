// Package cli provides the interactive portfolio command-line client.
//
// It wires configuration, local storage, the identity provider, backend API
// services, and an interactive REPL. Public commands (list, more, refresh,
// profile) work without signing in; gallery mutations (upload, delete, edit,
// setprofile) are gated behind the route guard, which requires both a live
// provider session and a valid local session record.
//
// The REPL is started via App.Run(ctx), which subscribes for auth-state
// notifications, arms the session-expiry timer, and blocks until the user
// exits. See App, runREPL, and the services package for details.
package cli
