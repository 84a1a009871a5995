package core

import "github.com/dloscutoff/go-appleseed/pkg/reader"

// parseAll reads every top-level form out of source via pkg/reader,
// which implements the language's own grammar (spec §6 tokenizer/parser
// contract).
func (p *Program) parseAll(source string) []Value {
	return reader.Parse(source)
}
