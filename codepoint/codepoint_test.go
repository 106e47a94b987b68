package codepoint

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestToPointsString(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	inputs := [...]string{"❤", "\U0001f646\U0001f3ff\u200d\u2642", "A", ""}
	outputs := [...]string{"2764", "1f646-1f3ff-200d-2642", "41", ""}
	for i, in := range inputs {
		if p := ToPointsString(in); p != outputs[i] {
			t.Errorf("expected code-point string of %q to be %q, is %q", in, outputs[i], p)
		}
	}
}

func TestFromPointsString(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	u, err := FromPointsString("1f646-1f3ff-2642")
	if err != nil {
		t.Fatal(err)
	}
	if u != "\U0001f646\U0001f3ff\u2642" {
		t.Errorf("expected man gesturing OK, dark skin tone, have %+q", u)
	}
	if u, _ = FromPointsString("271D"); u != "✝" {
		t.Errorf("expected upper-case hex to decode to latin cross, have %+q", u)
	}
	if u, _ = FromPointsString(""); u != "" {
		t.Errorf("expected empty code-point string to decode to empty string, have %+q", u)
	}
}

func TestFromPointsStringErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, bad := range []string{"zz", "1f646--2642", "2764-", "110000", "-"} {
		if _, err := FromPointsString(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
	if _, err := FromPointsString("1f646--2642"); !errors.Is(err, ErrEmptyToken) {
		t.Errorf("expected empty token error, have %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	inputs := []string{
		"❤", "✝", "🐧", "🦃", "\U0001f646\U0001f3ff\u200d\u2642",
		"\U0001f468\u200d\U0001f469\u200d\U0001f467", "\U0001f1e9\U0001f1ea",
		"I ❤ NY", "\u0000", "\U0010ffff", "abc",
	}
	for _, in := range inputs {
		p := ToPointsString(in)
		out, err := FromPointsString(p)
		if err != nil {
			t.Errorf("round trip of %+q failed: %v", in, err)
			continue
		}
		if out != in {
			t.Errorf("expected round trip of %+q via %q to be identity, have %+q", in, p, out)
		}
	}
}

func TestMustFromPointsString(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected MustFromPointsString to panic on illegal input")
		}
	}()
	_ = MustFromPointsString("not-hex")
}
