package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-iiif/encode"
	"github.com/signadot/go-iiif/libdiff"
	"github.com/signadot/go-iiif/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readDoc(cc, args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	if cfg.Merge {
		return mergePatch(cfg, cc.Out, a, b)
	}
	from, err := parse.Parse(a)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := parse.Parse(b)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	cs := libdiff.Diff(from, to)
	if len(cs) == 0 {
		return nil
	}
	printChanges(cc.Out, cs, cfg.colorize(cc.Out))
	return cli.ExitCodeErr(1)
}

func mergePatch(cfg *DiffConfig, w io.Writer, a, b []byte) error {
	p, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return fmt.Errorf("error creating merge patch: %w", err)
	}
	n, err := parse.Parse(p)
	if err != nil {
		return err
	}
	return encode.Encode(n, w, cfg.encOpts(w)...)
}

func printChanges(w io.Writer, cs []libdiff.Change, colors bool) {
	paint := map[libdiff.Kind]*color.Color{
		libdiff.Insert:  color.New(color.FgGreen),
		libdiff.Delete:  color.New(color.FgRed),
		libdiff.Replace: color.New(color.FgYellow),
		libdiff.Literal: color.New(color.FgCyan),
		libdiff.Reorder: color.New(color.FgBlue),
	}
	for _, c := range cs {
		line := c.String()
		if colors {
			p := paint[c.Kind]
			p.EnableColor()
			line = p.Sprint(line)
		}
		fmt.Fprintln(w, line)
	}
}
