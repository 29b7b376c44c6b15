package signin

func runMigrations(exec Executor) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS signin_oauth_states (
			state TEXT PRIMARY KEY,
			provider TEXT NOT NULL,
			verifier TEXT NOT NULL,
			expires_at INTEGER,
			created_at INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS signin_oauth_states_expires ON signin_oauth_states (expires_at)`,
	}

	for _, q := range queries {
		if err := exec.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
