// Package paths provides path handling for dotupdate: home expansion,
// normalization to absolute form and the XDG locations of the config file.
package paths
