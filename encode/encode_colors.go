package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/go-iiif/ir"
)

// Role is what a piece of output text is, for coloring.
type Role int

const (
	RolePunct Role = iota
	RoleKey
	// RoleKeyword is a JSON-LD keyword key such as @id or @context.
	RoleKeyword
	RoleString
	RoleNumber
	RoleBool
	RoleNull
)

func valueRole(t ir.Type) Role {
	switch t {
	case ir.StringType:
		return RoleString
	case ir.NumberType:
		return RoleNumber
	case ir.BoolType:
		return RoleBool
	case ir.NullType:
		return RoleNull
	}
	return RolePunct
}

func keyRole(key string) Role {
	if strings.HasPrefix(key, "@") {
		return RoleKeyword
	}
	return RoleKey
}

// Colors is a palette. Roles missing from it are written plain.
type Colors map[Role]*color.Color

// NewColors returns the palette used for terminal output.
func NewColors() Colors {
	return Colors{
		RolePunct:   color.New(color.FgHiBlack),
		RoleKey:     color.New(color.FgBlue),
		RoleKeyword: color.New(color.FgMagenta, color.Bold),
		RoleString:  color.New(color.FgGreen),
		RoleNumber:  color.New(color.FgCyan),
		RoleBool:    color.New(color.FgYellow),
		RoleNull:    color.New(color.FgRed),
	}
}

// Paint colors s for role r.
func (c Colors) Paint(r Role, s string) string {
	if p := c[r]; p != nil {
		return p.Sprint(s)
	}
	return s
}
