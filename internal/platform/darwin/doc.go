// Package darwin implements the platform interfaces for macOS using the
// ApplicationServices accessibility API, NSWorkspace, and CGEvent input
// synthesis. It registers itself with the platform package via init().
package darwin
