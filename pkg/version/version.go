// Package version provides the simulator's version information.
package version

// Version is the current rtsim version.
const Version = "0.1.0"
