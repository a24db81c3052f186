package postgresadapter

// Models lists the tables owned by the progression context for schema migration.
func Models() []any {
	return []any{&participantModel{}}
}
