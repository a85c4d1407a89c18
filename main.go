package main

import (
	"context"
	"math/rand/v2"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/mager/woodshed/cache"
	"github.com/mager/woodshed/config"
	"github.com/mager/woodshed/database"
	"github.com/mager/woodshed/handler/health"
	"github.com/mager/woodshed/handler/scales"
	"github.com/mager/woodshed/handler/speedstandards"
	"github.com/mager/woodshed/handler/strategycards"
	"github.com/mager/woodshed/logger"
	"github.com/mager/woodshed/metrics"
	"github.com/mager/woodshed/util"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string

	// Method reports the HTTP method this route answers.
	Method() string
}

//	@title			Woodshed
//	@version		1.0
//	@description	Practice tools: speed standards, strategy cards and circle-of-fifths scale rankings

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @host		localhost:8080
// @BasePath	/
func main() {
	fx.New(
		fx.WithLogger(func(log *zap.SugaredLogger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Desugar()}
		}),
		appOptions(),
	).Run()
}

// appOptions is the application graph without the fx event logger.
func appOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			NewHTTPServer,
			NewRouter,
			newRand,
			config.Options,
			logger.Options,
			database.Options,
			metrics.Options,

			fx.Annotate(database.NewSongStore, fx.As(new(speedstandards.SongStore))),
			fx.Annotate(database.NewCardStore, fx.As(new(strategycards.CardStore))),
			fx.Annotate(cache.Options, fx.As(new(scales.RankingCache))),
			asPinger,

			AsRoute(health.NewHealthHandler),
			AsRoute(speedstandards.NewRepertoireHandler),
			AsRoute(speedstandards.NewUpdateSongHandler),
			AsRoute(speedstandards.NewCreateSongHandler),
			AsRoute(speedstandards.NewPracticeHandler),
			AsRoute(strategycards.NewRandomCardHandler),
			AsRoute(scales.NewRankingHandler),
			AsRoute(scales.NewAnalyzeHandler),
			AsRoute(scales.NewDiceHandler),
		),
		fx.Invoke(func(*http.Server) {}),
	)
}

type RouterParams struct {
	fx.In

	Log     *zap.SugaredLogger
	Metrics *metrics.Metrics
	Routes  []Route `group:"routes"`
}

// NewRouter registers every route plus /metrics.
func NewRouter(p RouterParams) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware(p.Log), p.Metrics.Middleware)

	for _, route := range p.Routes {
		r.Handle(route.Pattern(), jsonMiddleware(route)).Methods(route.Method())
		p.Log.Debugw("Registered route", "method", route.Method(), "pattern", route.Pattern())
	}
	r.Handle("/metrics", p.Metrics.Handler()).Methods(http.MethodGet)

	return r
}

func NewHTTPServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg config.Config, router *mux.Router) *http.Server {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Infow("Starting HTTP server", "addr", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

// AsRoute annotates the given constructor to state that
// it provides a route to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

func asPinger(db *sqlx.DB) health.Pinger {
	return db
}

func newRand() *rand.Rand {
	return util.NewRand(uint64(time.Now().UnixNano()))
}
