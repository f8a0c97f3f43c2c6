// Package assemble merges computed display fields and per-block HTML into
// an adapted page template. Block placeholder markers are substituted by
// literal replacement, optional theme selections override block content
// with named partial templates, and a final engine pass interpolates field
// expressions.
package assemble
