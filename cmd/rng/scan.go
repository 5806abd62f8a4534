package main

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine-based scanner for the command language. A command line is a
// keyword, optionally followed by a spec-string argument.

// Token types of the command language.
const (
	tokEOF int = iota
	tokKeyword
	tokSpec
)

// keywords of the command language; every first word of a line must be
// one of these.
var keywords = []string{
	"add", "remove", "compact", "list", "items", "clear", "hash",
	"help", "quit",
}

// token is what the scanner hands to the command loop.
type token struct {
	kind   int
	lexeme string
}

// cmdScanner tokenizes command lines.
type cmdScanner struct {
	lexer *lexmachine.Lexer
}

// newCmdScanner compiles the command-language DFA. Keywords come before
// the spec pattern, so they win for equal-length matches.
func newCmdScanner() (*cmdScanner, error) {
	lexer := lexmachine.NewLexer()
	for _, kw := range keywords {
		lexer.Add([]byte(kw), makeToken(tokKeyword))
	}
	lexer.Add([]byte(`-?[0-9\.][0-9\.\-:,]*`), makeToken(tokSpec))
	lexer.Add([]byte(`( |\t)+`), skip)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &cmdScanner{lexer: lexer}, nil
}

// tokens scans a full command line.
func (cs *cmdScanner) tokens(line string) ([]token, error) {
	s, err := cs.lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []token
	for {
		tok, err, eof := s.Next()
		if eof {
			return tokens, nil
		}
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				s.TC = ui.FailTC
			}
			return nil, err
		}
		if tok == nil { // skipped whitespace
			continue
		}
		t := tok.(*lexmachine.Token)
		tokens = append(tokens, token{kind: t.Type, lexeme: string(t.Lexeme)})
	}
}

// skip is a scanner action which ignores the match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a scanner action which wraps a match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
