package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScanCommandLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.repl")
	defer teardown()
	//
	cs, err := newCmdScanner()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tokens, err := cs.tokens("add 1-10:2,15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].kind != tokKeyword || tokens[0].lexeme != "add" {
		t.Errorf("expected an 'add' keyword, got %v", tokens[0])
	}
	if tokens[1].kind != tokSpec || tokens[1].lexeme != "1-10:2,15" {
		t.Errorf("expected the spec argument, got %v", tokens[1])
	}
}

func TestScanRejectsForeignCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.repl")
	defer teardown()
	//
	cs, err := newCmdScanner()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cs.tokens("add 1x5"); err == nil {
		t.Errorf("expected a scan error for a letter inside a spec")
	}
}
