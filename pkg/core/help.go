package core

// helpText is printed by the `help` macro. Reworded from
// original_source/help_text.py rather than translated verbatim.
const helpText = `Enter expressions at the prompt.

- A run of digits, with an optional leading minus sign, is an integer.
- () is the empty list, the only falsy "no data" value.
- Anything in "double quotes" is a string literal.
- A parenthesized series of expressions is a function or macro call.
- Anything else is a name: it returns the value bound to it, or errors
  if nothing is bound; quote it with q to treat it as a symbol instead.

Builtin functions and macros:

- cons. Takes a value and a list, returns a new list with the value
  at the front.
- head, tail. Takes a list, returns its first element (or nil) or
  everything but the first element (or nil).
- add, sub, mul, div, mod. Two integers in, one integer out. div and
  mod are floor division and its remainder.
- less?, equal?. Compare two values; true or false.
- str, chars. Converts between a list of character codes and a string.
- repr. Renders any value as the string that would read back as it.
- type. Returns a value's type name.
- eval. Evaluates a value as an expression.
- q (macro). Returns its argument unevaluated.
- if (macro). Evaluates the condition, then evaluates and returns
  whichever branch the condition selects.
- def (macro). Evaluates an expression and binds it to a name at
  global scope. Names cannot be redefined once bound.
- load (macro). Evaluates a file's contents as code, loading it once.
- debug. Writes a message to stderr, then evaluates and returns its
  second argument.
- object, has-property?, get-property, copy. Construct and inspect
  Objects.

You can write your own functions and macros: a list of two elements,
a parameter spec and a body expression. A macro is the same shape with
a leading 0; its arguments arrive unevaluated and get substituted
directly into the body before that is evaluated.

The standard library is loaded automatically at startup: list, lambda,
not, and, or, and other conveniences written in this language itself.

Special REPL-only features:

- _ is bound to the value of the last expression evaluated.
- (restart) clears all user-defined names and reloads the library.
- (help) shows this text.
- (quit) ends the session.
`
