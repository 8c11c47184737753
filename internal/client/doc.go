// Package client implements the console application runtime.
//
// It wires configuration, logging, the notification dispatcher, the HTTP
// adapter, services, resource stores, and the identity provider into the
// terminal UI lifecycle.
package client
