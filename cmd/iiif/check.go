package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-iiif/encode"
	"github.com/signadot/go-iiif/iiif"
	"github.com/signadot/go-iiif/libdiff"
	"github.com/signadot/go-iiif/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed := 0
	for _, file := range fileArgs(args) {
		d, err := readDoc(cc, file)
		if err != nil {
			return err
		}
		ok, err := checkDoc(cfg, cc.Out, file, d)
		if err != nil {
			theLog.Error("check", "file", file, "error", err)
			failed++
			continue
		}
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkDoc decodes d, encodes the result and reports what the cycle
// changed. It returns false if content was lost.
func checkDoc(cfg *CheckConfig, w io.Writer, file string, d []byte) (bool, error) {
	in, r, err := parseDoc(d)
	if err != nil {
		return false, err
	}
	out, err := iiif.Marshal(r, encode.EncodeWire(true))
	if err != nil {
		return false, err
	}
	if jsonpatch.Equal(d, out) {
		if !cfg.Quiet {
			fmt.Fprintf(w, "%s: ok\n", file)
		}
		return true, nil
	}
	back, err := parse.Parse(out)
	if err != nil {
		return false, fmt.Errorf("re-reading encoded %s: %w", r.Type(), err)
	}
	cs := libdiff.Diff(in, back)
	losses := libdiff.Losses(cs)
	if len(losses) == 0 {
		if !cfg.Quiet {
			fmt.Fprintf(w, "%s: ok (%d cosmetic changes)\n", file, len(cs))
		}
		return true, nil
	}
	fmt.Fprintf(w, "%s: %d changes\n", file, len(losses))
	printChanges(w, losses, cfg.colorize(w))
	return false, nil
}
