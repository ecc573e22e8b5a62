package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/iiif"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/parse"

	"github.com/scott-cotton/cli"
)

// readDoc reads path, or the command input for "-".
func readDoc(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// decodeDoc decodes a collection or, by default, a manifest. Other
// resource types are decoded by their @type.
func decodeDoc(n *ir.Node) (iiif.Resource, error) {
	t, _ := convert.String(ir.Get(n, "@type"))
	switch t {
	case iiif.TypeCollection:
		c, err := convert.Decode(iiif.Collections, n)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "", iiif.TypeManifest:
		m, err := convert.Decode(iiif.Manifests, n)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return iiif.Decode(n)
}

func parseDoc(d []byte) (*ir.Node, iiif.Resource, error) {
	n, err := parse.Parse(d)
	if err != nil {
		return nil, nil, err
	}
	r, err := decodeDoc(n)
	if err != nil {
		return n, nil, err
	}
	return n, r, nil
}

// fileArgs returns the file arguments, "-" for the command input if none.
func fileArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
