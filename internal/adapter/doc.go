// Package adapter provides the transport layer for talking to the
// ApoloNotes REST API.
//
// The primary abstraction is [HTTPDoer]: verb-level operations (Get, Post,
// Put, Delete) parameterized by path, optional body, and optional query
// values, every call carrying the fixed request timeout from configuration.
// Typed endpoint bindings live one layer up in internal/service.
//
// Every response or transport failure passes through a single classifier
// that (a) dispatches exactly one user-visible notification per failed call
// through the injected notify.Dispatcher and (b) returns an error wrapping
// one of the sentinel values in errors.go, so callers can use [errors.Is]
// for transport-agnostic handling. No retry is attempted at this layer.
package adapter
