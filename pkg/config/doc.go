// Package config loads listing settings documents and the CLI environment.
//
// Settings documents are JSON or YAML files holding the same payload the
// server sends at startup. LoadFS walks a filesystem and decodes every
// document it finds, keyed by file name without extension; Defaults returns
// the embedded baseline used when no server payload is available.
package config
