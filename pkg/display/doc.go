// Package display computes the plain-text and image fields a product page
// shows: the description picked from a priority list of catalog fields,
// the representative image for a role, and the gallery URL ordering.
//
// Every helper is total: missing or malformed product data degrades to an
// empty value instead of an error so a partial record never breaks page
// rendering.
package display
