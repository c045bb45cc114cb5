// Package pg connects to PostgreSQL through a pgx pool and stores visitor
// preferences in it.
//
//	pool, err := pg.Connect(ctx, pg.Config{ConnectionString: os.Getenv("PG_CONN_URL")})
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	prefs := pg.NewPreferenceStore(pool)
//	if err := prefs.Migrate(ctx); err != nil {
//		return err
//	}
//
// WithTx attaches a pgx.Tx to a context; PreferenceStore uses it instead
// of the pool when present, so preference writes can join a larger
// transaction.
package pg
