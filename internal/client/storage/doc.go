// Package storage opens the persistent key-value backend selected by
// configuration.
//
// Backends:
//   - sqlite: a local database file, schema applied with embedded goose migrations;
//   - redis:  a Redis server, useful when several terminals share one session;
//   - memory: nothing is persisted, handy for demos and tests.
//
// All backends implement kv.Repository and kv.Batcher.
package storage
