package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/longkey1/agentchat/internal/site"
	"github.com/spf13/cobra"
)

var statsInterval time.Duration

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <value>...",
	Short: "Animate hero statistics",
	Long: `Count each statistic up from zero, like the hero section of the site.

Supported forms: "95%", "10K+", "500+", "42". Values containing "/" such as
"24/7" are shown as-is.

Example:
  agentchat stats 500+ 95% 24/7`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := make([]site.Stat, 0, len(args))
		for _, arg := range args {
			stat, err := site.ParseStat(arg)
			if err != nil {
				return fmt.Errorf("parsing statistic: %w", err)
			}
			stats = append(stats, stat)
		}

		frames := make([][]string, len(stats))
		for i, stat := range stats {
			frames[i] = stat.Frames(site.DefaultSteps)
		}

		ticker := time.NewTicker(statsInterval)
		defer ticker.Stop()

		for step := 0; step < site.DefaultSteps; step++ {
			line := make([]string, len(stats))
			for i, f := range frames {
				line[i] = f[min(step, len(f)-1)]
			}
			fmt.Printf("\r%s", strings.Join(line, "  "))
			if step < site.DefaultSteps-1 {
				<-ticker.C
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().DurationVar(&statsInterval, "interval", 30*time.Millisecond, "Time between counter ticks")
}
