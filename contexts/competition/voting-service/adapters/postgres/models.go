package postgresadapter

// Models lists the tables owned by the voting context for schema migration.
// Nomination and school rows are owned by their home contexts and read here
// as projections only.
func Models() []any {
	return []any{
		&votingTokenModel{},
		&voteModel{},
		&outboxModel{},
	}
}
