// Package pagetemplate fetches a rendered storefront page and adapts it
// into a reusable template: elements matching configured block classes are
// swapped for placeholder markers that a later assembly step fills in.
package pagetemplate
