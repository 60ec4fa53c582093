// Package cli wires together the Cobra command tree for the prreview binary.
//
// The root command runs one review pass over the newest open pull request;
// the config and version subcommands are informational. Command handlers set
// the process exit code instead of returning errors so that fatal and handled
// failures stay distinguishable.
package cli
