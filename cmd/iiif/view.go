package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-iiif/encode"
	"github.com/signadot/go-iiif/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := fileArgs(args)
	for i, file := range files {
		if err := viewFile(cfg, cc, file); err != nil {
			return err
		}
		if cfg.YAML && i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, file string) error {
	d, err := readDoc(cc, file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	_, r, err := parseDoc(d)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	if cfg.YAML {
		return writeYAML(cc.Out, r.ToIR())
	}
	if err := encode.Encode(r.ToIR(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}

func writeYAML(w io.Writer, n *ir.Node) error {
	d, err := toYAML(n)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
