package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/urfave/cli/v2"
	igloo "github.com/virjilakrum/igloo"
	"github.com/virjilakrum/igloo/config"
	"github.com/virjilakrum/igloo/dataavailability"
	"github.com/virjilakrum/igloo/db"
	"github.com/virjilakrum/igloo/derivation"
	"github.com/virjilakrum/igloo/engine"
	"github.com/virjilakrum/igloo/engine/executorclient"
	"github.com/virjilakrum/igloo/etherman"
	"github.com/virjilakrum/igloo/event"
	"github.com/virjilakrum/igloo/event/nileventstorage"
	"github.com/virjilakrum/igloo/event/pgeventstorage"
	"github.com/virjilakrum/igloo/jsonrpc"
	"github.com/virjilakrum/igloo/log"
	"github.com/virjilakrum/igloo/metrics"
	"github.com/virjilakrum/igloo/pool"
	"github.com/virjilakrum/igloo/runner"
	"github.com/virjilakrum/igloo/state"
	"github.com/virjilakrum/igloo/state/pgstatestorage"
)

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}
	setupLog(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		igloo.PrintVersion(os.Stdout)
		log.Info("starting igloo node")
	}

	if c.Metrics.Enabled {
		metrics.Init()
	}

	// Migrations
	if !cliCtx.Bool(config.FlagMigrations) {
		log.Infof("running DB migrations host: %s:%s db:%s user:%s", c.State.DB.Host, c.State.DB.Port, c.State.DB.Name, c.State.DB.User)
		runStateMigrations(c.State.DB)
		if c.EventLog.DB.Name != "" {
			runEventMigrations(c.EventLog.DB)
		}
	}
	checkStateMigrations(c.State.DB)

	var (
		eventStorage event.Storage
		cancelFuncs  []context.CancelFunc
	)
	if c.EventLog.DB.Name != "" {
		eventStorage, err = pgeventstorage.NewPostgresEventStorage(c.EventLog.DB)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		eventStorage, err = nileventstorage.NewNilEventStorage()
		if err != nil {
			log.Fatal(err)
		}
	}
	eventLog := event.NewEventLog(c.EventLog, eventStorage)

	stateSqlDB, err := db.NewSQLDB(c.State.DB)
	if err != nil {
		log.Fatal(err)
	}
	st := newState(c, stateSqlDB, eventLog)

	etherMan, err := etherman.NewClient(c.Etherman)
	if err != nil {
		log.Fatal(err)
	}

	var executor *executorclient.Client
	if c.Executor.URI != "" {
		var execCancel context.CancelFunc
		executor, execCancel, err = executorclient.NewClient(cliCtx.Context, c.Executor)
		if err != nil {
			log.Fatal(err)
		}
		cancelFuncs = append(cancelFuncs, execCancel)

		lastEpoch, err := executor.GetLastEpoch(cliCtx.Context)
		if err != nil {
			log.Fatalf("could not read the executor's last applied epoch: %v", err)
		}
		log.Infof("executor last applied epoch: %d (%s)", lastEpoch.EpochNumber, lastEpoch.EpochHash)
	}
	eng := newEngine(st, executor)

	// local DA mode: frames are served from memory, fed by the pool side.
	daBackend := dataavailability.NewMemBackend()

	run := runner.NewRunner(c.Runner, etherMan, st, eng, eventLog)
	if err := run.RegisterInstant(derivation.NewInstantDeriver()); err != nil {
		log.Fatal(err)
	}
	if err := run.RegisterDa(derivation.NewDaDeriver(c.Derivation, daBackend)); err != nil {
		log.Fatal(err)
	}

	txPool := pool.NewPool(c.Pool)

	ev := &event.Event{
		ReceivedAt:  time.Now(),
		Source:      event.Source_Node,
		Component:   event.Component_Runner,
		Level:       event.Level_Info,
		EventID:     event.EventID_NodeComponentStarted,
		Description: "Running derivation runner",
	}
	if err := eventLog.LogEvent(cliCtx.Context, ev); err != nil {
		log.Fatal(err)
	}

	go runRunner(cliCtx.Context, run)
	go runJSONRPCServer(c.JSONRPC, st, txPool)

	if c.Metrics.Enabled {
		go startMetricsHttpServer(c.Metrics)
	}
	if c.Metrics.ProfilingEnabled {
		go startProfilingHttpServer(c.Metrics)
	}

	waitSignal(cancelFuncs)
	return nil
}

func setupLog(c log.Config) {
	log.Init(c)
}

func runStateMigrations(c db.Config) {
	runMigrations(c, db.StateMigrationName)
}

func runEventMigrations(c db.Config) {
	runMigrations(c, db.EventMigrationName)
}

func checkStateMigrations(c db.Config) {
	err := db.CheckMigrations(c, db.StateMigrationName)
	if err != nil {
		log.Fatal(err)
	}
}

func runMigrations(c db.Config, name string) {
	log.Infof("running migrations for %v", name)
	err := db.RunMigrationsUp(c, name)
	if err != nil {
		log.Fatal(err)
	}
}

func newState(c *config.Config, sqlDB *pgxpool.Pool, eventLog *event.EventLog) *state.State {
	stateDb := pgstatestorage.NewPostgresStorage(c.State, sqlDB)
	return state.NewState(c.State, stateDb, eventLog)
}

func newEngine(st *state.State, executor *executorclient.Client) engine.Engine {
	if executor == nil {
		log.Info("no executor configured, running the engine in record-only mode")
		return engine.NewStateEngine(st, nil)
	}
	return engine.NewStateEngine(st, executor)
}

func runRunner(ctx context.Context, run *runner.Runner) {
	if err := run.Start(ctx); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}

func runJSONRPCServer(cfg jsonrpc.Config, st *state.State, txPool *pool.Pool) {
	srv := jsonrpc.NewServer(cfg, st, txPool)
	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}
}

func startMetricsHttpServer(c metrics.Config) {
	const readHeaderTimeout = 10 * time.Second
	mux := http.NewServeMux()
	address := fmt.Sprintf("%s:%d", c.Host, c.Port)
	lis, err := net.Listen("tcp", address)
	if err != nil {
		log.Errorf("failed to create tcp listener for metrics: %v", err)
		return
	}
	mux.Handle(metrics.Endpoint, metrics.Handler())
	metricsServer := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	log.Infof("metrics server listening on port %d", c.Port)
	if err := metricsServer.Serve(lis); err != nil && err != http.ErrServerClosed {
		log.Errorf("closed http connection for metrics server: %v", err)
	}
}

func startProfilingHttpServer(c metrics.Config) {
	const two = 2
	mux := http.NewServeMux()
	address := fmt.Sprintf("%s:%d", c.ProfilingHost, c.ProfilingPort)
	lis, err := net.Listen("tcp", address)
	if err != nil {
		log.Errorf("failed to create tcp listener for profiling: %v", err)
		return
	}
	mux.HandleFunc(metrics.ProfilingIndexEndpoint, pprof.Index)
	mux.HandleFunc(metrics.ProfileEndpoint, pprof.Profile)
	mux.HandleFunc(metrics.ProfilingCmdEndpoint, pprof.Cmdline)
	mux.HandleFunc(metrics.ProfilingSymbolEndpoint, pprof.Symbol)
	mux.HandleFunc(metrics.ProfilingTraceEndpoint, pprof.Trace)
	profilingServer := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: two * time.Minute,
		ReadTimeout:       two * time.Minute,
	}
	log.Infof("profiling server listening on port %d", c.ProfilingPort)
	if err := profilingServer.Serve(lis); err != nil && err != http.ErrServerClosed {
		log.Errorf("closed http connection for profiling server: %v", err)
	}
}

func waitSignal(cancelFuncs []context.CancelFunc) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	for sig := range signals {
		switch sig {
		case os.Interrupt, os.Kill:
			log.Info("terminating application gracefully...")
			for _, cancel := range cancelFuncs {
				cancel()
			}
			os.Exit(0)
		}
	}
}
