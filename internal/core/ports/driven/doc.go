// Package driven defines the interfaces the core depends on.
//
// Driven ports are implemented by adapters (storage, config files) and
// injected into the core services. The core never constructs them.
package driven
