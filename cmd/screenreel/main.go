package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/screenreel/screenreel/internal/config"
	"github.com/screenreel/screenreel/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	ctx := context.Background()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "screenreel",
	Short: "screenreel - demo video camera planner",
	Long: "Turns pointer telemetry from a recorded browser session into virtual-camera\n" +
		"keyframes, ffmpeg filtergraphs, and storyboard stills.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging
		logging.Init(verbose)

		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// Store config in context
		ctx := config.WithConfig(cmd.Context(), cfg)
		cmd.SetContext(ctx)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./screenreel.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(synthesizeCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(storyboardCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(badgeCmd)
	rootCmd.AddCommand(doctorCmd)
}
