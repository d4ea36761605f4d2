//go:build !stackboxdebug

package layout

const debugAssertions = false
