package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "iiif").
		WithSynopsis("iiif [opts] command [opts]").
		WithDescription("iiif is a tool for working with IIIF Presentation 2 documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return iiifMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			CanvasesCommand(cfg),
			NewCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("decode manifests or collections and write them back out").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("check [files]").
		WithDescription("check that documents survive a decode and encode cycle").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-merge] a b").
		WithDescription("diff two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch -p <patch.json> [file]").
		WithDescription("apply a JSON patch to a document and validate the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func CanvasesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CanvasesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Canvases, "canvases").
		WithAliases("ca").
		WithSynopsis("canvases [-e expr] [file]").
		WithDescription("list the canvases of a manifest").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return canvases(cfg, cc, args)
		})
}

func NewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "canvas",
		Description: "add a canvas of the given size, repeatable",
		Type:        cli.NamedFuncOpt(cfg.canvasOpt, "(WxH)"),
	})
	return cli.NewCommandAt(&cfg.New, "new").
		WithSynopsis("new -base URL -label L [-canvas WxH]...").
		WithDescription("scaffold a manifest with minted ids").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return newManifest(cfg, cc, args)
		})
}
