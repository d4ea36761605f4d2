//go:build stackboxdebug

package layout

// Building with -tags stackboxdebug turns assertion failures into panics.
const debugAssertions = true
