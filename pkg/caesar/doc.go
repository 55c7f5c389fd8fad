// Package caesar implements the Caesar substitution cipher over the ASCII Latin
// alphabet.
//
// Letters are rotated within their own case; every other rune passes through
// unchanged. All functions are pure: they never mutate their input and never
// fail. Range checking of user-supplied shift amounts is left to callers such
// as [github.com/germanamz/caesar/pkg/session].
package caesar
