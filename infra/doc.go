// Package infra contains technical adapters: the HTTP client for the
// prediction backend, metrics exporters, the zerolog logger and terminal
// widgets. These packages should depend only on the interfaces defined in
// the core packages.
package infra
