// Package api provides the HTTP API for the application
package api

import (
	"devgate/internal/platform/config"
	"devgate/internal/platform/logger"
	phttp "devgate/internal/platform/net/http"
	"devgate/internal/platform/store"

	"devgate/internal/modkit"
	"devgate/internal/modkit/httpkit"
	"devgate/internal/modkit/module"

	activitymod "devgate/internal/services/activity/module"
	chatmod "devgate/internal/services/chat/module"
	feedmod "devgate/internal/services/feed/module"
	insightsmod "devgate/internal/services/insights/module"
	metamod "devgate/internal/services/meta/module"
	progressionmod "devgate/internal/services/progression/module"
	socialmod "devgate/internal/services/social/module"
	usersmod "devgate/internal/services/users/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Construct the users module first and extract its port; every other
	// domain module validates user existence through it
	usersModule := usersmod.New(deps)
	users := module.MustPortsOf[usersmod.Ports](usersModule).Users

	mods := []module.Module{
		metamod.New(deps),
		usersModule,
		activitymod.New(deps, modkit.WithPorts(activitymod.Ports{Users: users})),
		progressionmod.New(deps, modkit.WithPorts(progressionmod.Ports{Users: users})),
		insightsmod.New(deps, modkit.WithPorts(insightsmod.Ports{Users: users})),
		feedmod.New(deps, modkit.WithPorts(feedmod.Ports{Users: users})),
		socialmod.New(deps, modkit.WithPorts(socialmod.Ports{Users: users})),
		chatmod.New(deps, modkit.WithPorts(chatmod.Ports{Users: users})),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
