package postgresadapter

// Models lists the tables owned by the identity context for schema migration.
func Models() []any {
	return []any{
		&schoolModel{},
		&adminModel{},
		&evaluatorModel{},
	}
}
