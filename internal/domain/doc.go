// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/project). This root
// package holds sentinel errors, validation types, and the constraint
// predicate consumed by the input-collection layer.
package domain
