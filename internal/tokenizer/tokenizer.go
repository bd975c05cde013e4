// Package tokenizer splits a single over-long line into atomic tokens.
package tokenizer

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind int

const (
	// Space is a run of whitespace.
	Space Kind = iota
	// Reference is a link or image reference such as [text](url) or ![alt](url).
	Reference
	// Word is a run of non-whitespace, non-bracket characters.
	Word
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case Space:
		return "space"
	case Reference:
		return "reference"
	case Word:
		return "word"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of a line. Only the oversized fallback of the
// chunker may split a token.
type Token struct {
	Kind Kind
	Text string
}

var referenceRe = regexp.MustCompile(`^!?\[.*?\]\(.*?\)`)

// Tokenize splits line into whitespace runs, references and word runs.
// Concatenating the Text of the returned tokens yields line.
func Tokenize(line string) []Token {
	tokens := make([]Token, 0, 8)
	i := 0
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		switch {
		case unicode.IsSpace(r):
			end := scan(line, i, unicode.IsSpace)
			tokens = append(tokens, Token{Kind: Space, Text: line[i:end]})
			i = end
		case opensReference(line, i):
			if loc := referenceRe.FindStringIndex(line[i:]); loc != nil {
				tokens = append(tokens, Token{Kind: Reference, Text: line[i : i+loc[1]]})
				i += loc[1]
				continue
			}
			// 不构成引用的括号按单字符处理
			tokens = append(tokens, Token{Kind: Word, Text: line[i : i+size]})
			i += size
		case r == ']':
			tokens = append(tokens, Token{Kind: Word, Text: line[i : i+size]})
			i += size
		default:
			end := i + size
			for end < len(line) {
				next, n := utf8.DecodeRuneInString(line[end:])
				if unicode.IsSpace(next) || next == '[' || next == ']' || opensReference(line, end) {
					break
				}
				end += n
			}
			tokens = append(tokens, Token{Kind: Word, Text: line[i:end]})
			i = end
		}
	}
	return tokens
}

// opensReference reports whether a reference may start at byte offset i.
func opensReference(line string, i int) bool {
	switch line[i] {
	case '[':
		return true
	case '!':
		return i+1 < len(line) && line[i+1] == '['
	}
	return false
}

func scan(line string, i int, keep func(rune) bool) int {
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if !keep(r) {
			break
		}
		i += size
	}
	return i
}
