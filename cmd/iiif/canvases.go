package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-iiif/iiif"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func canvases(cfg *CanvasesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Canvases.Parse(cc, args)
	if err != nil {
		cfg.Canvases.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: canvases takes at most one file, got %v", cli.ErrUsage, args)
	}
	file := fileArgs(args)[0]
	d, err := readDoc(cc, file)
	if err != nil {
		return err
	}
	m, err := iiif.ParseManifest(d)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	sel, err := compileSelect(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return listCanvases(cc.Out, m, sel)
}

// canvasEnv is the environment a selection expression sees. images is the
// number of image annotations.
func canvasEnv(c *iiif.Canvas) map[string]any {
	h, _ := c.Height()
	w, _ := c.Width()
	return map[string]any{
		"id":     c.ID(),
		"label":  c.Label(),
		"height": h,
		"width":  w,
		"images": len(c.Images()),
	}
}

// compileSelect compiles a boolean expression over canvasEnv. An empty
// expression selects every canvas.
func compileSelect(code string) (*vm.Program, error) {
	if code == "" {
		return nil, nil
	}
	env := canvasEnv(iiif.NewCanvas("", "", 0, 0))
	return expr.Compile(code, expr.Env(env), expr.AsBool())
}

func selectCanvases(m *iiif.Manifest, prg *vm.Program) ([]*iiif.Canvas, error) {
	var res []*iiif.Canvas
	for _, c := range m.Canvases() {
		if prg != nil {
			out, err := expr.Run(prg, canvasEnv(c))
			if err != nil {
				return nil, fmt.Errorf("canvas %s: %w", c.ID(), err)
			}
			if ok, _ := out.(bool); !ok {
				continue
			}
		}
		res = append(res, c)
	}
	return res, nil
}

func listCanvases(w io.Writer, m *iiif.Manifest, prg *vm.Program) error {
	cs, err := selectCanvases(m, prg)
	if err != nil {
		return err
	}
	for _, c := range cs {
		h, _ := c.Height()
		wd, _ := c.Width()
		if _, err := fmt.Fprintf(w, "%s\t%dx%d\t%s\n", c.ID(), wd, h, c.Label()); err != nil {
			return err
		}
	}
	return nil
}
