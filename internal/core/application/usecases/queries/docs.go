// Package queries holds the read side of the workflow. Every query carries
// the caller's access.Scope and only ever returns orders that scope covers.
package queries
