// Command devgate-reconcile sweeps every user and pushes their stored level
// up to the level their current metrics earn. Run it once for a manual sweep
// or on an interval as a background worker.
package main

import (
	"context"
	"flag"
	"time"

	"devgate/internal/modkit"
	"devgate/internal/modkit/module"
	"devgate/internal/platform/config"
	"devgate/internal/platform/logger"
	"devgate/internal/platform/store"

	progressionmod "devgate/internal/services/progression/module"
	usersmod "devgate/internal/services/users/module"
)

func main() {
	root := config.New()
	dbCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dbCfg.MustString("DBURL"),
			MaxConns:    int32(dbCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: dbCfg.MayInt("SLOW_MS", 500),
			LogSQL:      dbCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// Flags
	var (
		fOnce     = flag.Bool("once", false, "run a single sweep and exit")
		fInterval = flag.Duration("interval", 15*time.Minute, "delay between sweeps in worker mode")
		fLimit    = flag.Int("limit", 0, "max users to reconcile per sweep (0 = unlimited)")
	)
	flag.Parse()

	// Shared deps
	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	usersModule := usersmod.New(deps)
	users := module.MustPortsOf[usersmod.Ports](usersModule).Users

	prog := progressionmod.New(deps, modkit.WithPorts(progressionmod.Ports{Users: users}))
	module.Register(prog.Name(), prog.Ports())

	ports := module.MustPortsOf[progressionmod.OutPorts](prog)

	ctx := context.Background()

	sweep := func() {
		ids, err := users.IDs(ctx)
		if err != nil {
			l.Error().Err(err).Msg("reconcile sweep: listing users failed")
			return
		}
		if *fLimit > 0 && len(ids) > *fLimit {
			ids = ids[:*fLimit]
		}

		var updated int
		for _, id := range ids {
			res, err := ports.Progression.Reconcile(ctx, id)
			if err != nil {
				l.Warn().Err(err).Str("user_id", id).Msg("reconcile failed for user")
				continue
			}
			if res.Updated {
				updated++
				l.Info().Str("user_id", id).Int("level", res.Level).Msg("level advanced")
			}
		}
		l.Info().Int("users", len(ids)).Int("updated", updated).Msg("reconcile sweep done")
	}

	sweep()
	if *fOnce {
		return
	}

	ticker := time.NewTicker(*fInterval)
	defer ticker.Stop()
	for range ticker.C {
		sweep()
	}
}
