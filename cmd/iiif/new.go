package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/go-iiif/encode"
	"github.com/signadot/go-iiif/iiif"

	"github.com/scott-cotton/cli"
)

type canvasSize struct {
	Width, Height int
}

func parseCanvasSize(a string) (canvasSize, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(a), "x")
	if !ok {
		return canvasSize{}, fmt.Errorf("%w: canvas size %q is not WxH", cli.ErrUsage, a)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return canvasSize{}, fmt.Errorf("%w: bad canvas width in %q", cli.ErrUsage, a)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return canvasSize{}, fmt.Errorf("%w: bad canvas height in %q", cli.ErrUsage, a)
	}
	return canvasSize{Width: w, Height: h}, nil
}

func (cfg *NewConfig) canvasOpt(_ *cli.Context, a string) (any, error) {
	sz, err := parseCanvasSize(a)
	if err != nil {
		return nil, err
	}
	cfg.Canvases = append(cfg.Canvases, sz)
	return sz, nil
}

func newManifest(cfg *NewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.New.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: new takes no arguments, got %v", cli.ErrUsage, args)
	}
	if cfg.Base == "" {
		return fmt.Errorf("%w: new requires -base", cli.ErrUsage)
	}
	m := scaffold(cfg.Base, cfg.Label, cfg.Canvases)
	theLog.Info("new manifest", "id", m.ID(), "canvases", len(cfg.Canvases))
	return encode.Encode(m.ToIR(), cc.Out, cfg.encOpts(cc.Out)...)
}

// scaffold builds a manifest under a freshly minted base with one sequence
// holding a canvas per size.
func scaffold(base, label string, sizes []canvasSize) *iiif.Manifest {
	root := iiif.MintID(base)
	m := iiif.NewManifest(root+"/manifest", label)
	seq := iiif.NewSequence(root + "/sequence/normal")
	for i, sz := range sizes {
		id := fmt.Sprintf("%s/canvas/p%d", root, i+1)
		seq.AddCanvas(iiif.NewCanvas(id, fmt.Sprintf("p. %d", i+1), sz.Height, sz.Width))
	}
	m.AddSequence(seq)
	return m
}
