// Package domain defines the value types, storage and service interfaces,
// and the error taxonomy shared across cachet.
//
// Everything here is a plain value with no behaviour beyond accessors and
// JSON encoding; concrete implementations live in internal/store,
// internal/services and internal/drop.
package domain
