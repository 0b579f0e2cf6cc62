// Package services contains stateless domain services coordinating rules
// that span aggregates. AccessGuard centralizes the role and status checks
// applied before every guarded mutation.
package services
