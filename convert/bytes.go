package convert

import (
	"bytes"
	"io"

	"github.com/signadot/go-iiif/encode"
	"github.com/signadot/go-iiif/parse"
	"github.com/signadot/go-iiif/track"
)

type opts struct {
	parse  []parse.ParseOption
	encode []encode.EncodeOption
}

type Option func(*opts)

func WithParseOptions(po ...parse.ParseOption) Option {
	return func(o *opts) { o.parse = append(o.parse, po...) }
}

func WithEncodeOptions(eo ...encode.EncodeOption) Option {
	return func(o *opts) { o.encode = append(o.encode, eo...) }
}

func buildOpts(options []Option) *opts {
	o := &opts{}
	for _, f := range options {
		f(o)
	}
	return o
}

// DecodeBytes parses d and decodes the result.
func DecodeBytes[T track.Trackable](c Converter[T], d []byte, options ...Option) (T, error) {
	var zero T
	n, err := parse.Parse(d, buildOpts(options).parse...)
	if err != nil {
		return zero, err
	}
	return Decode(c, n)
}

func DecodeReader[T track.Trackable](c Converter[T], r io.Reader, options ...Option) (T, error) {
	var zero T
	n, err := parse.ParseReader(r, buildOpts(options).parse...)
	if err != nil {
		return zero, err
	}
	return Decode(c, n)
}

func EncodeBytes[T track.Trackable](c Converter[T], v T, options ...Option) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := EncodeWriter(c, v, buf, options...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func EncodeWriter[T track.Trackable](c Converter[T], v T, w io.Writer, options ...Option) error {
	return encode.Encode(Encode(c, v), w, buildOpts(options).encode...)
}
