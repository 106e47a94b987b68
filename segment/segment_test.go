package segment

import (
	"regexp"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestShortcodeMatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tests := []struct {
		in string
		n  int
	}{
		{":heart:", 7},
		{":HEART: NY", 7},
		{":+1:", 4},
		{":-1:x", 4},
		{":man_gesturing_ok_tone5:", 24},
		{"::", 0},
		{":::", 0},
		{": heart:", 0},
		{":heart", 0},
		{"heart:", 0},
		{":hé:", 0},
		{"", 0},
	}
	for _, test := range tests {
		if n := Shortcodes.Match(test.in); n != test.n {
			t.Errorf("expected match of %q to be %d bytes, is %d", test.in, test.n, n)
		}
	}
}

func TestSegments(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seg := NewSegmenter(nil)
	seg.Init("I:HEART:NY ::heart::x")
	var out []string
	for seg.Next() {
		if seg.Matched() {
			out = append(out, "["+seg.Text()+"]")
		} else {
			out = append(out, seg.Text())
		}
	}
	if s := strings.Join(out, "|"); s != "I|[:HEART:]|NY :|[:heart:]|:x" {
		t.Errorf("unexpected segments %s", s)
	}
}

func TestSegmenterPositions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	seg := NewSegmenter(Shortcodes)
	seg.Init(":a::b:")
	var pos []int
	for seg.Next() {
		if !seg.Matched() {
			t.Errorf("expected only matches, have %q", seg.Text())
		}
		pos = append(pos, seg.Pos())
	}
	if len(pos) != 2 || pos[0] != 0 || pos[1] != 3 {
		t.Errorf("expected matches at 0 and 3, have %v", pos)
	}
	seg.Init("")
	if seg.Next() {
		t.Errorf("expected no segments for empty input")
	}
}

// The shortcode segmenter has to agree with a global regular expression
// replacement, which is the reference behaviour.
func TestSegmenterAgreesWithRegexp(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	re := regexp.MustCompile(`(?i):[\w+\-]+:`)
	inputs := []string{
		"I:heart:NY",
		":heart:❤:heart: tripleheart",
		":charizard: ❤ :pancakes: :wow:",
		"a:b:c:d:e",
		"::::x:::y::",
		":+1::-1::thumbsup",
		"10:30:45 is a time",
		"emoji 🐧 :penguin: done:",
		":ä:é:x:",
	}
	mark := func(s string) string { return "<" + strings.ToLower(s) + ">" }
	for _, in := range inputs {
		expected := re.ReplaceAllStringFunc(in, mark)
		var b strings.Builder
		seg := NewSegmenter(Shortcodes)
		seg.Init(in)
		for seg.Next() {
			if seg.Matched() {
				b.WriteString(mark(seg.Text()))
			} else {
				b.WriteString(seg.Text())
			}
		}
		if b.String() != expected {
			t.Errorf("for input %q expected %q, have %q", in, expected, b.String())
		}
	}
}

func TestMatcherFunc(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	hearts := MatcherFunc(func(s string) int {
		if strings.HasPrefix(s, "❤") {
			return len("❤")
		}
		return 0
	})
	seg := NewSegmenter(hearts)
	seg.Init("❤❤ a ❤")
	n, text := 0, ""
	for seg.Next() {
		if seg.Matched() {
			n++
		}
		text += seg.Text()
	}
	if n != 3 || text != "❤❤ a ❤" {
		t.Errorf("expected 3 hearts and unchanged text, have %d and %q", n, text)
	}
}

func TestRecognizer(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rec := NewPooledRecognizer(ruleColon)
	for _, r := range ":ok:" {
		rec.RuneEvent(r, 1)
	}
	if !rec.Done() || rec.MatchLength() != 4 {
		t.Errorf("expected recognizer to accept 4 bytes, is %v", rec)
	}
	rec.Release()
	rec = NewRecognizer(ruleColon)
	rec.RuneEvent(':', 1)
	rec.RuneEvent(' ', 1)
	if !rec.Done() || rec.MatchLength() != 0 {
		t.Errorf("expected recognizer to abort, is %v", rec)
	}
	rec.RuneEvent(':', 1) // ignored after Done
	if rec.MatchLength() != 0 {
		t.Errorf("expected done recognizer to ignore rune events")
	}
}
