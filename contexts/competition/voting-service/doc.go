// Package votingservice implements the public-voting subsystem of the
// competition backend.
//
// The module owns single-use voting tokens, the append-only vote ledger, and
// the cast-vote orchestration that spends a token against a teacher
// nomination. The conditional token claim is the sole double-spend gate;
// everything ahead of it is advisory. Business rules live in
// application/domain layers and infrastructure stays behind ports and
// adapters.
package votingservice
