//go:build qpackdebug

package qpack

// debugAssertEnabled is true when built with -tags qpackdebug. See
// assert_off.go for the release-build counterpart.
const debugAssertEnabled = true
