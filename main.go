package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fib-lab/gridtraffic-sim/analyzer"
	"github.com/fib-lab/gridtraffic-sim/entity/junction/trafficlight"
	"github.com/fib-lab/gridtraffic-sim/entity/person"
	"github.com/fib-lab/gridtraffic-sim/monitor"
	"github.com/fib-lab/gridtraffic-sim/task"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}

	log = logrus.WithField("module", "main")

	configPath string
	logLevel   string
	vehicles   int
)

func main() {
	root := &cobra.Command{
		Use:   "gridtraffic-sim",
		Short: "Distributed real-time traffic simulator for a 4x4 signalized grid",
		RunE:  runAll,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path (empty uses built-in defaults)")
	root.PersistentFlags().StringVar(&logLevel, "log.level", "info", "log level: trace debug info warn error critical off")

	simCmd := &cobra.Command{
		Use:   "simulation",
		Short: "Run the Simulation Engine: spawn vehicle agents and drive them through the grid",
		RunE:  runSimulation,
	}
	simCmd.Flags().IntVar(&vehicles, "vehicles", 0, "number of vehicles to spawn (0 uses the config/default value)")

	tlCmd := &cobra.Command{
		Use:   "traffic_light",
		Short: "Run the Traffic Light Controller",
		RunE:  runTrafficLight,
	}

	analyzerCmd := &cobra.Command{
		Use:   "analyzer",
		Short: "Run the Flow Analyzer",
		RunE:  runAnalyzer,
	}

	monitorCmd := &cobra.Command{
		Use:   "monitoring",
		Short: "Run the System Monitor",
		RunE:  runMonitoring,
	}

	root.AddCommand(simCmd, tlCmd, analyzerCmd, monitorCmd)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		FullTimestamp:   true,
	})
}

func setLogLevel() {
	if level, ok := logLevels[logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
}

// buildContext loads the config and builds the shared task.Context
// every subcommand runs a service out of.
func buildContext() (*task.Context, context.Context, context.CancelFunc, error) {
	setLogLevel()
	c, err := task.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	t, err := task.NewContext(c)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("received shutdown signal")
		cancel()
		t.Close()
	}()
	return t, ctx, cancel, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	t, ctx, cancel, err := buildContext()
	if err != nil {
		return err
	}
	defer cancel()
	count := t.RuntimeConfig().C.VehicleCount
	if vehicles > 0 {
		count = vehicles
	}
	mgr := person.NewManager(t.LaneManager(), t.Planner(), t.Bus(),
		t.RuntimeConfig().C.MinSpeed, t.RuntimeConfig().C.MaxSpeed, t.LightPollInterval())
	if err := mgr.Prepare(); err != nil {
		return err
	}
	t.Bus().Start()
	return mgr.Run(ctx, count)
}

func runTrafficLight(cmd *cobra.Command, args []string) error {
	t, ctx, cancel, err := buildContext()
	if err != nil {
		return err
	}
	defer cancel()
	controller := trafficlight.NewController(t.JunctionManager(), t.Bus(), t.GreenDuration(), t.ClearanceDuration())
	if err := controller.Prepare(); err != nil {
		return err
	}
	t.Bus().Start()
	return controller.Run(ctx)
}

func runAnalyzer(cmd *cobra.Command, args []string) error {
	t, ctx, cancel, err := buildContext()
	if err != nil {
		return err
	}
	defer cancel()
	a := analyzer.New(t.Bus(), t.RuntimeConfig().C.CongestionThreshold, t.RuntimeConfig().C.RecommendedGreenTime)
	if err := a.Prepare(); err != nil {
		return err
	}
	t.Bus().Start()
	return a.Run(ctx)
}

func runMonitoring(cmd *cobra.Command, args []string) error {
	t, ctx, cancel, err := buildContext()
	if err != nil {
		return err
	}
	defer cancel()
	m := monitor.New(t.Bus())
	if err := m.Prepare(); err != nil {
		return err
	}
	t.Bus().Start()
	return m.Run(ctx)
}

// runAll launches all four services in a single process, sharing one
// Context and bus, for local development. Every service declares its exchanges
// and subscribes before the bus is started once, so the fixed
// subscriber count each exchange's fanout is built from (bus/inprocess.go)
// is never raced against a service that hasn't joined yet.
func runAll(cmd *cobra.Command, args []string) error {
	t, ctx, cancel, err := buildContext()
	if err != nil {
		return err
	}
	defer cancel()

	count := t.RuntimeConfig().C.VehicleCount
	if vehicles > 0 {
		count = vehicles
	}

	controller := trafficlight.NewController(t.JunctionManager(), t.Bus(), t.GreenDuration(), t.ClearanceDuration())
	a := analyzer.New(t.Bus(), t.RuntimeConfig().C.CongestionThreshold, t.RuntimeConfig().C.RecommendedGreenTime)
	m := monitor.New(t.Bus())
	mgr := person.NewManager(t.LaneManager(), t.Planner(), t.Bus(),
		t.RuntimeConfig().C.MinSpeed, t.RuntimeConfig().C.MaxSpeed, t.LightPollInterval())

	for _, prep := range []func() error{controller.Prepare, a.Prepare, m.Prepare, mgr.Prepare} {
		if err := prep(); err != nil {
			return err
		}
	}
	t.Bus().Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return controller.Run(gctx) })
	g.Go(func() error { return a.Run(gctx) })
	g.Go(func() error { return m.Run(gctx) })
	g.Go(func() error { return mgr.Run(gctx, count) })

	if err := g.Wait(); err != nil {
		cancel()
		return err
	}
	return nil
}
