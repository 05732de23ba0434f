// Package terminal drives an xterm-compatible terminal with raw ANSI sequences.
//
// Features:
//   - True color (24-bit), 256-color and colorless output
//   - Full-frame output through one buffered writer with coalesced SGR runs
//   - Raw stdin parsing for the stop keys
//   - Clean terminal restoration on exit/panic
//
// Terminfo is bypassed; color capability comes from the environment via termenv.
package terminal
