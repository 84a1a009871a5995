// Package stdlib embeds the appleseed-language standard library that
// every fresh program preloads, matching
// original_source/execution.py's `self.asl_load("library")` call inside
// Program.__init__.
package stdlib

import "embed"

//go:embed library.asl
var files embed.FS

// Source returns the embedded library.asl contents.
func Source() ([]byte, error) {
	return files.ReadFile("library.asl")
}
