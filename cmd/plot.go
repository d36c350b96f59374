// cmd/plot.go
package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	plotInputPath  string
	plotOutputPath string
)

// plotCmd renders a results summary as a plain-text table. The corpus's
// dependency surface carries no charting library, so this is a tabular
// report rather than a rendered plot.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render a results summary as a plain-text table",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(plotInputPath)
		if err != nil {
			logrus.Fatalf("reading results %s: %v", plotInputPath, err)
		}

		var summary map[string]any
		if err := yaml.Unmarshal(data, &summary); err != nil {
			logrus.Fatalf("parsing results %s: %v", plotInputPath, err)
		}

		table := renderTable(summary)

		if plotOutputPath == "" {
			fmt.Print(table)
			return
		}
		if err := os.WriteFile(plotOutputPath, []byte(table), 0o644); err != nil {
			logrus.Fatalf("writing table to %s: %v", plotOutputPath, err)
		}
		logrus.Infof("table written to %s", plotOutputPath)
	},
}

func renderTable(summary map[string]any) string {
	collectorNames := make([]string, 0, len(summary))
	for name := range summary {
		collectorNames = append(collectorNames, name)
	}
	sort.Strings(collectorNames)

	out := ""
	for _, name := range collectorNames {
		out += fmt.Sprintf("== %s ==\n", name)
		metrics, ok := summary[name].(map[string]any)
		if !ok {
			out += fmt.Sprintf("  %v\n", summary[name])
			continue
		}
		keys := make([]string, 0, len(metrics))
		for k := range metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out += fmt.Sprintf("  %-24s %v\n", k, metrics[k])
		}
	}
	return out
}

func init() {
	plotCmd.Flags().StringVarP(&plotInputPath, "results", "r", "results.yaml", "Path to a results summary written by run")
	plotCmd.Flags().StringVarP(&plotOutputPath, "output", "o", "", "Path to write the rendered table (stdout if empty)")
}
