package main

import (
	"github.com/signadot/go-iiif/ir"

	"github.com/goccy/go-yaml"
)

// toYAML renders n as YAML, keeping field order.
func toYAML(n *ir.Node) ([]byte, error) {
	return yaml.Marshal(yamlValue(n))
}

func yamlValue(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(n.Fields))
		_ = n.Each(func(k string, v *ir.Node) error {
			res = append(res, yaml.MapItem{Key: k, Value: yamlValue(v)})
			return nil
		})
		return res
	case ir.ArrayType:
		res := make([]any, 0, len(n.Values))
		for _, v := range n.Values {
			res = append(res, yamlValue(v))
		}
		return res
	case ir.StringType:
		return n.String
	case ir.BoolType:
		return n.Bool
	case ir.NumberType:
		switch {
		case n.Int64 != nil:
			return *n.Int64
		case n.Float64 != nil:
			return *n.Float64
		}
		return n.Number
	}
	return nil
}
