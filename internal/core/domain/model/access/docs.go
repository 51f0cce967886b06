// Package access models who is calling: the closed Role enumeration and the
// per-request Scope that binds a role to its actor, branch or partner.
package access
