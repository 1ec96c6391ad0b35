package gomap

type convOpts struct {
	exactDecimals bool
}

type Option func(*convOpts)

// ExactDecimals keeps DecimalType values as their exact text when
// assigning into any-typed targets, instead of parsing to float64.
func ExactDecimals() Option {
	return func(o *convOpts) { o.exactDecimals = true }
}
