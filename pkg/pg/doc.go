// Package pg bootstraps PostgreSQL access with pgx/v5: a retrying pool
// constructor, goose migrations applied from an embedded filesystem, a health
// probe and helpers that classify driver errors.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrations.FS, cfg, log); err != nil {
//	    return err
//	}
package pg
