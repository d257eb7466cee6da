// Package patch implements the patch-application engine: locating a rule's
// span inside target content and splicing in a replacement, free-length for
// scripts and strictly length-preserving for native binaries.
//
// All offsets are byte offsets. Target bytes are handled as raw Go strings
// (a 1:1 byte-to-index mapping), so the same scanning code is safe for
// minified JS text and for string tables embedded in executables.
package patch

// literal tracks which string-literal mode the scanner is inside.
type literal int

const (
	literalNone literal = iota
	literalSingle
	literalDouble
	literalTemplate
)

// FindMatchingParen scans forward from open, which must point at an opening
// parenthesis, and returns the index of the parenthesis that balances it.
// Parentheses inside single-quoted, double-quoted, or template-string
// literals do not count toward nesting, and a backslash inside a literal
// suppresses the character after it (including a closing quote). Returns -1
// if the text ends before the nesting closes, or if open does not point at
// an opening parenthesis.
//
// This is the reason a regex cannot locate the end of a call expression:
// minified bundles routinely contain parens and escaped quotes inside
// string arguments.
func FindMatchingParen(text string, open int) int {
	if open < 0 || open >= len(text) || text[open] != '(' {
		return -1
	}

	depth := 0
	mode := literalNone
	escaped := false

	for i := open; i < len(text); i++ {
		c := text[i]

		if mode != literalNone {
			if escaped {
				escaped = false
				continue
			}
			switch {
			case c == '\\':
				escaped = true
			case c == '\'' && mode == literalSingle:
				mode = literalNone
			case c == '"' && mode == literalDouble:
				mode = literalNone
			case c == '`' && mode == literalTemplate:
				mode = literalNone
			}
			continue
		}

		switch c {
		case '\'':
			mode = literalSingle
		case '"':
			mode = literalDouble
		case '`':
			mode = literalTemplate
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// isIdentByte reports whether c can appear in a callee identifier. Dots are
// included so member calls like a.b.render() capture the full path.
func isIdentByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '$', c == '.':
		return true
	}
	return false
}

// isSpaceByte matches the whitespace the backward walk skips between a
// callee and its opening parenthesis.
func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
