// Package adapters holds filesystem-backed stores used by the command line.
package adapters
