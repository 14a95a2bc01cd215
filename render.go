package main

import (
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/jmigpin/roundcorner/util/fswatcher"
	"github.com/jmigpin/roundcorner/util/imageutil"
	"github.com/jmigpin/roundcorner/util/uiutil"
	"github.com/jmigpin/roundcorner/util/uiutil/attrs"
	"github.com/jmigpin/roundcorner/util/uiutil/widget"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	attrs     string
	size      string
	text      string
	textColor string
	bg        string
	out       string
	density   float64
	watch     bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the rounded box to a png file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.logger(cmd)
			if err != nil {
				return err
			}
			if err := render(flags, cmd.OutOrStdout(), log); err != nil {
				return err
			}
			if flags.watch {
				return watch(cmd.Context(), flags, cmd.OutOrStdout(), log)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.attrs, "attrs", "a", "", "yaml attributes file")
	f.StringVarP(&flags.size, "size", "s", "200x100", "image size (WxH)")
	f.StringVarP(&flags.text, "text", "t", "", "label text inside the box")
	f.StringVar(&flags.textColor, "text-color", "black", "label text color")
	f.StringVar(&flags.bg, "bg", "", "background color, transparent if empty")
	f.StringVarP(&flags.out, "out", "o", "out.png", "output png file, \"-\" for stdout")
	f.Float64Var(&flags.density, "density", 1, "dp to px factor")
	f.BoolVarP(&flags.watch, "watch", "w", false, "render again when the attributes file changes")
	return cmd
}

//----------

func render(flags *renderFlags, stdout io.Writer, log zerolog.Logger) error {
	opt := widget.DefaultRoundedBoxOptions()
	if flags.attrs != "" {
		a, err := attrs.ReadFile(flags.attrs)
		if err != nil {
			return err
		}
		opt, err = a.Options(flags.density)
		if err != nil {
			return err
		}
	}
	opt.Logger = &log

	size, err := attrs.ParseSize(flags.size)
	if err != nil {
		return err
	}

	ui := uiutil.NewImageUI(&log)
	if flags.bg != "" {
		c, err := imageutil.ParseColor(flags.bg)
		if err != nil {
			return errors.Wrap(err, "bg")
		}
		ui.Bg = c
	}

	rb := widget.NewRoundedBox(ui, opt)
	if flags.text != "" {
		l := widget.NewLabel(ui, flags.text)
		c, err := imageutil.ParseColor(flags.textColor)
		if err != nil {
			return errors.Wrap(err, "text color")
		}
		l.Color = c
		rb.Append(l)
	}
	ui.SetRoot(rb)
	ui.Resize(size)
	ui.PaintIfNeeded()

	if err := writePNG(flags.out, stdout, ui); err != nil {
		return err
	}
	log.Info().
		Str("out", flags.out).
		Stringer("size", size).
		Stringer("mode", opt.Shape.Mode).
		Msg("rendered")
	return nil
}

func writePNG(filename string, stdout io.Writer, ui *uiutil.ImageUI) error {
	if filename == "-" {
		return png.Encode(stdout, ui.RGBA())
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, ui.RGBA()); err != nil {
		_ = f.Close()
		return errors.Wrap(err, filename)
	}
	return f.Close()
}

//----------

func watch(ctx context.Context, flags *renderFlags, stdout io.Writer, log zerolog.Logger) error {
	if flags.attrs == "" {
		return errors.New("watch: missing attributes file")
	}
	target, err := filepath.Abs(flags.attrs)
	if err != nil {
		return err
	}

	w, err := fswatcher.NewFsnWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	return watchLoop(ctx, w, target, flags, stdout, log)
}

func watchLoop(ctx context.Context, w fswatcher.Watcher, target string, flags *renderFlags, stdout io.Writer, log zerolog.Logger) error {
	*w.OpMask() = fswatcher.Create | fswatcher.Modify | fswatcher.Rename

	// watch the directory, editors often replace the file
	dir := filepath.Dir(target)
	if err := w.Add(dir); err != nil {
		return err
	}
	defer w.Remove(dir)
	log.Info().Str("file", target).Msg("watching")

	for {
		select {
		case <-ctx.Done():
			return nil
		case u, ok := <-w.Events():
			if !ok {
				return nil
			}
			switch t := u.(type) {
			case error:
				log.Error().Err(t).Msg("watcher")
			case *fswatcher.Event:
				if t.Path() != target {
					continue
				}
				log.Debug().Stringer("op", t.Op).Msg("attributes changed")
				if err := render(flags, stdout, log); err != nil {
					log.Error().Err(err).Msg("render")
				}
			}
		}
	}
}
