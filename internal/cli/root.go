package cli

import (
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"pxsteg/internal/logging"
	"syscall"
)

type rootOpts struct {
	logLevel      string
	cpuProfile    string
	memProfileDir string
}

func RootCommand() *cobra.Command {
	opts := rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "pxsteg",
		Short:         "Hide text and files in the least significant bits of images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.SetLevel(opts.logLevel); err != nil {
				return err
			}
			return startProfiling(opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			stopProfiling()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level, one of debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(ImageCommands(), ServeAppCommand())
	return rootCmd
}

func startProfiling(opts rootOpts) error {
	if opts.cpuProfile != "" {
		if err := StartCPUProfiler(opts.cpuProfile); err != nil {
			return err
		}
	}
	if opts.memProfileDir != "" {
		StartMemoryProfiler(opts.memProfileDir)
	}

	if opts.cpuProfile != "" || opts.memProfileDir != "" {
		// profiles are flushed on interrupt too, since serve only returns on failure
		c := make(chan os.Signal, 2)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-c
			stopProfiling()
			os.Exit(0)
		}()
	}
	return nil
}

func stopProfiling() {
	StopCPUProfiler()
	StopMemoryProfiler()
}
