// cmd/run.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ccnsim/ccnsim/internal/config"
)

var (
	configPath string
	resultsPath string
	logLevel    string
)

var runCmd = &cobra.Command{
	Use:   "run [config.yaml]",
	Short: "Run one simulation from a YAML configuration and write a results summary",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			configPath = args[0]
		}
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := config.Load(configPath)
		if err != nil {
			logrus.Fatalf("loading config %s: %v", configPath, err)
		}
		logrus.Infof("loaded config: topology=%s strategy=%s workload=%s",
			cfg.Topology.Name, cfg.Strategy.Name, cfg.Workload.Name)

		built, err := config.Build(cfg)
		if err != nil {
			logrus.Fatalf("building simulation: %v", err)
		}

		logrus.Info("starting simulation run")
		if err := built.Driver.Run(built.Controller, built.Strategy); err != nil {
			logrus.Fatalf("simulation run failed: %v", err)
		}
		logrus.Info("simulation complete")

		summary := built.Collectors.Summary()
		out, err := yaml.Marshal(summary)
		if err != nil {
			logrus.Fatalf("marshaling results: %v", err)
		}
		if err := os.WriteFile(resultsPath, out, 0o644); err != nil {
			logrus.Fatalf("writing results to %s: %v", resultsPath, err)
		}
		logrus.Infof("results written to %s", resultsPath)
	},
}

func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the run's YAML configuration")
	runCmd.Flags().StringVarP(&resultsPath, "results", "r", "results.yaml", "Path to write the collected metrics summary")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
}
