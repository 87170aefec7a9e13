// Package options holds the Configuration Object used by Stats Studio: an
// insertion-ordered bag of option values plus the helpers that serialise a
// subset of it into a URL query string.
//
// Values are strings, booleans, or nil. A value that is nil, the empty
// string, or false is treated as "not set" and never reaches a query string.
package options
