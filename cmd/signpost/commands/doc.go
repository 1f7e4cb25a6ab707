// Package commands implements the signpost CLI:
// checking route files, resolving paths, and walking a shell through navigations.
package commands
