package main

import (
	"io"
	"os"

	"github.com/signadot/go-iiif/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	WireOut bool   `cli:"name=wire desc='output in compact format'"`
	Debug   string `cli:"name=debug desc='comma separated areas to log to stderr: decode, encode, track, diff or all'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.colorize(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorize reports whether output to w is colored: -color forces it,
// otherwise it follows whether w is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig
	YAML bool `cli:"name=yaml aliases=y desc='output yaml'"`

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Merge   bool `cli:"name=merge desc='output an RFC 7386 merge patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p aliases=patch desc='RFC 6902 patch file'"`

	Patch *cli.Command
}

type CanvasesConfig struct {
	*MainConfig
	Expr string `cli:"name=e aliases=expr desc='boolean expression over id, label, height, width, images'"`

	Canvases *cli.Command
}

type NewConfig struct {
	*MainConfig
	Base     string `cli:"name=base desc='base URL for minted ids'"`
	Label    string `cli:"name=label desc='manifest label'"`
	Canvases []canvasSize

	New *cli.Command
}
