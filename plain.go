// ABOUTME: Non-interactive plain mode: prints the preview to stdout
// ABOUTME: Runs the same gutter and wrap pipeline as the TUI, then exits

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mrllama123/stu/config"
	"github.com/mrllama123/stu/preview"
	"github.com/mrllama123/stu/scroll"
)

// RunPlain prints the whole preview to w at the given width and exits.
// Output is stripped of styling so it is safe to pipe.
func RunPlain(w io.Writer, path string, cfg config.Config, width int) error {
	content, err := preview.Load(path, cfg)
	if err != nil {
		return err
	}

	options := scroll.Options{Number: cfg.Number, Wrap: cfg.Wrap}
	if content.Kind == preview.KindBinary {
		options.Wrap = false
	}

	state := scroll.New(content.Plain, content.Plain, content.Title, options)
	frame := state.RenderAll(width)

	out := bufio.NewWriter(w)

	for i, row := range frame.Body {
		if frame.Gutter != nil {
			fmt.Fprintf(out, "%*s ", state.GutterWidth()-1, frame.Gutter[i])
		}

		fmt.Fprintln(out, row)
	}

	if content.Truncated {
		fmt.Fprintf(out, "\n[truncated at %d bytes of %s]\n", cfg.MaxPreviewBytes, preview.FormatSize(content.Size))
	}

	return out.Flush()
}
