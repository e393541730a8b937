// Package client assembles the zann agent: the local SQLite cache, the
// HTTP adapter to the remote store, the keychain, and the sync services.
// It owns the process lifecycle; everything below it is wiring-free.
package client
