// Package cli wires together the Cobra command tree for the redline
// binary.
//
// The root command runs the review pipeline against the current
// directory; subcommands manage configuration and print version
// information.
package cli
