package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/emojicode/internal/ucdparse"
)

// ReadList reads emoji records from a line-oriented text format, one record
// per line:
//
//    # shortcode  ; code-points ; name      ; alternates        ; extra…
//    :heart:      ; 2764        ; red heart ; :red_heart: :love:
//    :charizard:  ;             ; charizard ;                   ; url=https://…
//
// Code-points may be given UCD style (space separated hex) or as a code-point
// string ("1f646-1f3ff-2642"); they may be omitted for records without a glyph.
// Alternates are separated by spaces. Any further fields of the form key=value
// are stored as Extra of the record, and so is a trailing comment (key
// "comment").
func ReadList(r io.Reader) (ListSource, error) {
	p, err := ucdparse.New(r)
	if err != nil {
		return nil, err
	}
	var ls ListSource
	for p.Next() {
		token := p.Token
		runes, err := token.CodePoints(2)
		if err != nil {
			return nil, fmt.Errorf("reading emoji list: %w", err)
		}
		rec := Record{
			Shortcode:  token.Field(1),
			Unicode:    string(runes),
			Name:       token.Field(3),
			Alternates: strings.Fields(token.Field(4)),
		}
		for i := 5; i <= len(token.Fields); i++ {
			kv := strings.SplitN(token.Field(i), "=", 2)
			if len(kv) != 2 || strings.TrimSpace(kv[0]) == "" {
				tracer().Infof("line %d: ignoring field %q", token.LineNo, token.Field(i))
				continue
			}
			rec.Extra = setExtra(rec.Extra, strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1]))
		}
		if token.Comment != "" {
			rec.Extra = setExtra(rec.Extra, "comment", token.Comment)
		}
		ls = append(ls, rec)
	}
	if err = p.Err(); err != nil {
		return nil, fmt.Errorf("reading emoji list: %w", err)
	}
	return ls, nil
}

func setExtra(extra map[string]interface{}, key string, value interface{}) map[string]interface{} {
	if extra == nil {
		extra = make(map[string]interface{})
	}
	extra[key] = value
	return extra
}
