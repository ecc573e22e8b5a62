package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/go-iiif/ir"
)

type parser struct {
	dec  *json.Decoder
	opts *parseOpts
}

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxDepth <= 0 {
		pOpts.maxDepth = defaultMaxDepth
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	p := &parser{dec: dec, opts: pOpts}
	node, err := p.value(0)
	if err != nil {
		return nil, err
	}
	_, err = dec.Token()
	switch {
	case errors.Is(err, io.EOF):
		return node, nil
	case err == nil:
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	default:
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
}

func (p *parser) token() (json.Token, error) {
	tok, err := p.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return tok, nil
}

func (p *parser) value(depth int) (*ir.Node, error) {
	tok, err := p.token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		n := ir.FromNumber(x.String())
		if n == nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrParse, x.String())
		}
		return n, nil
	case json.Delim:
		if depth >= p.opts.maxDepth {
			return nil, fmt.Errorf("%w: %w (%d)", ErrParse, ErrTooDeep, p.opts.maxDepth)
		}
		switch x {
		case '[':
			return p.array(depth + 1)
		case '{':
			return p.object(depth + 1)
		}
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}

func (p *parser) array(depth int) (*ir.Node, error) {
	res := ir.FromSlice(nil)
	for p.dec.More() {
		v, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		res.Append("", v)
	}
	if _, err := p.token(); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *parser) object(depth int) (*ir.Node, error) {
	res := ir.FromKeyVals(nil)
	index := map[string]int{}
	for p.dec.More() {
		tok, err := p.token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v is not a string", ErrParse, tok)
		}
		v, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		if i, dup := index[key]; dup {
			if p.opts.strictKeys {
				return nil, fmt.Errorf("%w: %w %q", ErrParse, ErrDuplicateKey, key)
			}
			v.Parent = res
			v.ParentIndex = i
			v.ParentField = key
			res.Values[i] = v
			continue
		}
		index[key] = len(res.Values)
		res.Append(key, v)
	}
	if _, err := p.token(); err != nil {
		return nil, err
	}
	return res, nil
}
