package parse

type parseOpts struct {
	anyRoot  bool
	maxDepth int
}

type ParseOption func(*parseOpts)

// AnyRoot accepts any value at the document root instead of requiring
// an object.
func AnyRoot() ParseOption {
	return func(o *parseOpts) { o.anyRoot = true }
}

// MaxDepth bounds container nesting. Inputs nested deeper fail to
// parse rather than exhausting the stack.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
