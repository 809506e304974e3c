//go:build !qpackdebug

package qpack

// debugAssertEnabled is a compile-time constant. When false, every
// `if debugAssertEnabled { ... }` guard in this package is dead code the
// compiler removes entirely, including whatever error/message
// construction lives inside it — so release builds pay nothing for the
// assertions Section 7 requires in debug builds. Build with -tags
// qpackdebug to enable them.
const debugAssertEnabled = false
