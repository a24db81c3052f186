// Package accountservice owns the three authentication roles of the
// platform: self-registered school accounts, the seeded administrator, and
// admin-created evaluator accounts. It issues and verifies the bearer tokens
// the HTTP layer uses for role gating.
package accountservice
