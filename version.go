// Package jsondata assembles JSON data behaviors into an Fx application.
//
// Each behavior keeps one record attribute decoded while the record is in
// use and encoded around persistence. See package behavior for the behavior
// itself and package datapath for the dotted-path accessor.
package jsondata

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the module version, set via ldflags.
	Version = "dev"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)
