// Package guard holds ConstructorGuard, the marker embedded in domain objects,
// commands and queries to tell constructed values from zero values.
package guard
