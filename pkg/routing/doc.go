// Package routing extracts route parameters from URL paths using a
// declarative format string with {name} placeholder segments.
package routing
