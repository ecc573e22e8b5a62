package parse

const defaultMaxDepth = 10000

type parseOpts struct {
	maxDepth   int
	strictKeys bool
}

type ParseOption func(*parseOpts)

// ParseMaxDepth limits nesting of arrays and objects. Zero or less means
// the default of 10000.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParseStrictKeys makes a repeated object key a parse error. By default the
// last occurrence wins and keeps the position of the first.
func ParseStrictKeys(v bool) ParseOption {
	return func(o *parseOpts) { o.strictKeys = v }
}
