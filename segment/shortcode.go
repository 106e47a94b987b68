package segment

// Shortcodes is a Matcher for shortcode tokens: a colon, followed by one or
// more name characters, followed by a colon, e.g. ":heart:" or ":+1:".
// Name characters are ASCII letters and digits, '_', '+' and '-'.
// Matching is case-insensitive in the sense that upper-case letters are
// name characters, too.
var Shortcodes Matcher = shortcodeMatcher{}

type shortcodeMatcher struct{}

// Match returns the length of a shortcode token at the start of s, or 0.
func (shortcodeMatcher) Match(s string) int {
	if len(s) < 3 || s[0] != ':' {
		return 0
	}
	return Recognize(ruleColon, s)
}

// IsShortcodeRune is true for runes which may be part of the name of a
// shortcode.
func IsShortcodeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '+', r == '-':
		return true
	}
	return false
}

func ruleColon(rec *Recognizer, r rune) NfaStateFn {
	if r == ':' {
		return ruleFirstName
	}
	return DoAbort(rec)
}

func ruleFirstName(rec *Recognizer, r rune) NfaStateFn {
	if IsShortcodeRune(r) {
		return ruleNameOrColon
	}
	return DoAbort(rec)
}

func ruleNameOrColon(rec *Recognizer, r rune) NfaStateFn {
	if IsShortcodeRune(r) {
		return ruleNameOrColon
	} else if r == ':' {
		return DoAccept(rec)
	}
	return DoAbort(rec)
}
