package main

import (
	"github.com/jmigpin/roundcorner/util/logutil"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
	logHuman bool
}

func (f *rootFlags) logger(cmd *cobra.Command) (zerolog.Logger, error) {
	return logutil.New(logutil.Options{
		Level:         f.logLevel,
		HumanReadable: f.logHuman,
		Writer:        cmd.ErrOrStderr(),
	})
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "roundcorner",
		Short:         "Rounded corner container renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logHuman, "log-human", false, "human readable logs")

	cmd.AddCommand(newRenderCmd(flags))
	return cmd
}
