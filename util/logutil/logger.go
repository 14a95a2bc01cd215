package logutil

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Options struct {
	Level         string // zerolog level name, default "info"
	HumanReadable bool
	Writer        io.Writer // default stderr
}

func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = l
	}

	output := writer
	if opts.HumanReadable {
		cw := zerolog.NewConsoleWriter()
		cw.Out = writer
		cw.TimeFormat = time.RFC3339
		output = cw
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}
