package debug

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type debug struct {
	Decode bool
	Encode bool
	Track  bool
	Diff   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("IIIF_DEBUG_DECODE")
	d.Encode = boolEnv("IIIF_DEBUG_ENCODE")
	d.Track = boolEnv("IIIF_DEBUG_TRACK")
	d.Diff = boolEnv("IIIF_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Track() bool {
	return d.Track
}
func Diff() bool {
	return d.Diff
}

// Areas names the flags Enable accepts, besides "all".
var Areas = []string{"decode", "encode", "track", "diff"}

// Enable turns on the named areas. It is used by tests and the CLI
// -debug option.
func Enable(areas ...string) error {
	for _, a := range areas {
		switch strings.TrimSpace(a) {
		case "decode":
			d.Decode = true
		case "encode":
			d.Encode = true
		case "track":
			d.Track = true
		case "diff":
			d.Diff = true
		case "all":
			*d = debug{true, true, true, true}
		case "":
		default:
			return fmt.Errorf("unknown debug area %q, want one of %s or all", a, strings.Join(Areas, ", "))
		}
	}
	return nil
}

// Reset turns every area off.
func Reset() {
	*d = debug{}
}
