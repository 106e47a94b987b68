package source

import (
	"encoding/json"
	"fmt"
	"io"
)

// Field names of emoji records in JSON sources.
const (
	fieldShortname  = "shortname"
	fieldAlternates = "shortname_alternates"
	fieldUnicode    = "unicode"
	fieldName       = "name"
)

// DecodeList reads a JSON array of emoji records (shape (a)). Fields
// "shortname", "shortname_alternates", "unicode" and "name" are recognized,
// all other fields are kept as Extra of the record.
func DecodeList(r io.Reader) (ListSource, error) {
	var raw []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding emoji list: %w", err)
	}
	ls := make(ListSource, 0, len(raw))
	for _, obj := range raw {
		rec := Record{
			Shortcode:  stringField(obj, fieldShortname),
			Alternates: stringsField(obj, fieldAlternates),
			Unicode:    stringField(obj, fieldUnicode),
			Name:       stringField(obj, fieldName),
		}
		rec.Extra = extraFields(obj, fieldShortname, fieldAlternates, fieldUnicode, fieldName)
		ls = append(ls, rec)
	}
	tracer().Debugf("decoded %d emoji records", len(ls))
	return ls, nil
}

// DecodeKeyed reads a JSON object keyed by code-point strings (shape (b)),
// e.g. emoji-toolkit's emoji_strategy.json. Fields "shortname",
// "shortname_alternates" and "name" are recognized, all other fields are kept
// as Extra of the entry.
func DecodeKeyed(r io.Reader) (KeyedSource, error) {
	var raw map[string]map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding keyed emoji source: %w", err)
	}
	ks := make(KeyedSource, len(raw))
	for key, obj := range raw {
		ks[key] = KeyedEntry{
			Shortname:           stringField(obj, fieldShortname),
			ShortnameAlternates: stringsField(obj, fieldAlternates),
			Name:                stringField(obj, fieldName),
			Extra:               extraFields(obj, fieldShortname, fieldAlternates, fieldName),
		}
	}
	tracer().Debugf("decoded %d keyed emoji entries", len(ks))
	return ks, nil
}

func stringField(obj map[string]interface{}, field string) string {
	if s, ok := obj[field].(string); ok {
		return s
	}
	return ""
}

func stringsField(obj map[string]interface{}, field string) []string {
	list, ok := obj[field].([]interface{})
	if !ok {
		return nil
	}
	var strs []string
	for _, item := range list {
		if s, ok := item.(string); ok && s != "" {
			strs = append(strs, s)
		}
	}
	return strs
}

func extraFields(obj map[string]interface{}, known ...string) map[string]interface{} {
	var extra map[string]interface{}
	for k, v := range obj {
		if isOneOf(k, known) {
			continue
		}
		if extra == nil {
			extra = make(map[string]interface{})
		}
		extra[k] = v
	}
	return extra
}

func isOneOf(s string, list []string) bool {
	for _, l := range list {
		if s == l {
			return true
		}
	}
	return false
}
