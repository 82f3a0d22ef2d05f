// Package cli provides the interactive postview command-line client.
//
// It wires configuration, the key-value store, the session, theme and posts
// services and an interactive REPL. On start the stored theme and session are
// restored; the user can then sign in with the demo account and browse posts.
//
// Key features:
//   - Login / Logout / Whoami
//   - List posts, show one post, refresh the list
//   - Light and dark themes, persisted across runs
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
