// Package types defines the core types and interfaces used throughout dotupdate.
// This includes the LinkRequest consumed by the linker, the per-entry
// LinkOutcome it produces, and the FS interface it performs I/O through.
package types
