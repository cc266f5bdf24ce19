package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/minirt"
	"github.com/viant/minirt/progress"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minirt",
		Short: "cooperative single-threaded task executor",
		Long: `
	minirt drives background sleep jobs and a root job that yields once,
	on a single goroutine.
`,
		Example: `  $ minirt run --config config.yaml
  `,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newRunCmd(), newVersionCmd())
	return rootCmd
}

func newRunCmd() *cobra.Command {
	var configURL, level string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run the configured workloads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := minirt.DefaultConfig()
			if configURL != "" {
				var err error
				if config, err = minirt.LoadConfig(cmd.Context(), configURL); err != nil {
					return err
				}
			}
			if level != "" {
				config.Log.Level = level
			}
			rt, err := minirt.New(config)
			if err != nil {
				return err
			}
			defer rt.Shutdown()

			ctx, tracker := progress.WithNewTracker(cmd.Context(), "run", nil)
			elapsed := rt.RunWorkloads(ctx, cmd.OutOrStdout())
			snapshot := tracker.Snapshot()
			rt.Logger().Info("workloads finished",
				zap.Duration("elapsed", elapsed),
				zap.Int("completed", snapshot.CompletedTasks),
				zap.Int("abandoned", snapshot.AbandonedTasks))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configURL, "config", "c", "", "config URL (file, mem or any afs scheme)")
	cmd.Flags().StringVar(&level, "log-level", "", "overrides log.level")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), minirt.Name, minirt.Version)
		},
	}
}

