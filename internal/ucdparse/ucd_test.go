package ucdparse

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	input := strings.NewReader("000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>")
	p, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Next() {
		t.Fatalf("expected a data item, have none (err=%v)", p.Err())
	}
	t.Logf("token = %v", p.Token)
	if p.Token.Field(2) != "CM" {
		t.Errorf("expected field #2 to be 'CM', is %q", p.Token.Field(2))
	}
	if !strings.HasPrefix(p.Token.Comment, "Cc") {
		t.Errorf("expected comment to start with 'Cc', is %q", p.Token.Comment)
	}
	if p.Next() {
		t.Errorf("expected a single data item")
	}
}

func TestSkipComments(t *testing.T) {
	input := strings.NewReader(`# header

:heart: ; 2764 ; red heart
   # indented comment
:cross: ; 271D ; latin cross ; :latin_cross:
`)
	n := 0
	err := Parse(input, func(token *Token) {
		n++
		if token.LineNo != 3 && token.LineNo != 5 {
			t.Errorf("unexpected data item at line %d", token.LineNo)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 data items, have %d", n)
	}
}

func TestCodePoints(t *testing.T) {
	p, _ := New(strings.NewReader("1F646 1F3FF 200D 2642 ; 1f646-1f3ff-2642 ; ; zz"))
	if !p.Next() {
		t.Fatalf("expected a data item")
	}
	runes, err := p.Token.CodePoints(1)
	if err != nil {
		t.Fatal(err)
	}
	if string(runes) != "\U0001f646\U0001f3ff\u200d\u2642" {
		t.Errorf("expected UCD style code-points to decode, have %+q", string(runes))
	}
	runes, _ = p.Token.CodePoints(2)
	if string(runes) != "\U0001f646\U0001f3ff\u2642" {
		t.Errorf("expected hyphenated code-points to decode, have %+q", string(runes))
	}
	if runes, err = p.Token.CodePoints(3); err != nil || len(runes) != 0 {
		t.Errorf("expected empty field to decode to empty sequence, have %v / %v", runes, err)
	}
	if _, err = p.Token.CodePoints(4); err == nil {
		t.Errorf("expected 'zz' to be rejected")
	}
	if p.Token.Field(7) != "" {
		t.Errorf("expected non-existent field to be empty")
	}
}
