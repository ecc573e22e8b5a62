package main

import (
	"fmt"

	"github.com/signadot/go-iiif/encode"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p <patch.json>", cli.ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: patch takes at most one file, got %v", cli.ErrUsage, args)
	}
	pd, err := readDoc(cc, cfg.PatchFile)
	if err != nil {
		return err
	}
	doc, err := readDoc(cc, fileArgs(args)[0])
	if err != nil {
		return err
	}
	res, err := applyPatch(pd, doc)
	if err != nil {
		return err
	}
	_, r, err := parseDoc(res)
	if err != nil {
		return fmt.Errorf("patched document is invalid: %w", err)
	}
	if err := encode.Encode(r.ToIR(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func applyPatch(p, doc []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	res, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	return res, nil
}
