package postgresadapter

// Models lists the tables owned by the nomination context for schema migration.
func Models() []any {
	return []any{&nominationModel{}}
}
