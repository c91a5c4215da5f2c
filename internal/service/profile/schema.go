package profile

import (
	"fmt"
	"strings"
)

// Kind classifies how a declared field coerces loose client input.
type Kind int

const (
	// KindString coerces to a non-null string with a declared default.
	KindString Kind = iota
	// KindNullableString coerces to a string or null; empty means null.
	KindNullableString
	// KindBool coerces any value to a strict boolean via truthiness.
	KindBool
	// KindList coerces to an ordered list of strings.
	KindList
)

// listDelimiter splits single-string list input into elements.
const listDelimiter = ","

// Field declares one schema entry: its wire name, coercion kind and the
// canonical default used when the field is absent from a stored record.
type Field struct {
	Name    string
	Kind    Kind
	Default any
}

// Schema is the single declared profile schema. Successive revisions of
// the service added fields over time (displayName, bannerUrl, font, the
// effect toggles); records written under any revision remain readable
// because absent fields fall back to these defaults instead of null.
//
// The document id is not part of the schema: it is the storage key,
// required on every write and never coerced.
var Schema = []Field{
	{Name: "username", Kind: KindString, Default: ""},
	{Name: "displayName", Kind: KindString, Default: ""},
	{Name: "bio", Kind: KindString, Default: ""},
	{Name: "links", Kind: KindList, Default: []string{}},
	{Name: "pfpUrl", Kind: KindNullableString, Default: nil},
	{Name: "bannerUrl", Kind: KindNullableString, Default: nil},
	{Name: "backgroundType", Kind: KindString, Default: "default"},
	{Name: "backgroundValue", Kind: KindString, Default: "default"},
	{Name: "font", Kind: KindString, Default: "default"},
	{Name: "fontColor", Kind: KindString, Default: "default"},
	{Name: "songEmbed", Kind: KindNullableString, Default: nil},
	{Name: "autoplaySong", Kind: KindBool, Default: false},
	{Name: "cursor", Kind: KindString, Default: "default"},
	{Name: "trailEffect", Kind: KindBool, Default: false},
	{Name: "trailColor", Kind: KindString, Default: "default"},
	{Name: "hoverEffect", Kind: KindString, Default: "default"},
	{Name: "layout", Kind: KindString, Default: "default"},
	{Name: "sections", Kind: KindList, Default: []string{}},
}

// schemaByName indexes Schema for single-field lookup.
var schemaByName = func() map[string]Field {
	m := make(map[string]Field, len(Schema))
	for _, f := range Schema {
		m[f.Name] = f
	}
	return m
}()

// Coerce normalizes a raw value for the named field. It returns the
// canonical value and whether the input was accepted. Rejected values
// are dropped from the update rather than failing the whole request.
// Unknown field names are always rejected.
//
// Coerce is pure and idempotent: applying it to its own accepted output
// returns the same value.
func Coerce(name string, raw any) (any, bool) {
	f, ok := schemaByName[name]
	if !ok {
		return nil, false
	}
	switch f.Kind {
	case KindList:
		v, ok := coerceList(raw)
		if !ok {
			return nil, false
		}
		return v, true
	case KindBool:
		return truthy(raw), true
	case KindNullableString:
		return coerceNullableString(raw)
	default:
		v, ok := coerceString(raw, f.Default.(string))
		if !ok {
			return nil, false
		}
		return v, true
	}
}

// coerceList accepts an ordered sequence or a delimited string. A string
// splits on the delimiter with each element trimmed; empty elements are
// dropped so that "" and "," both coerce to the empty list.
func coerceList(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case nil:
		return []string{}, true
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
				continue
			}
			out = append(out, fmt.Sprint(e))
		}
		return out, true
	case string:
		parts := strings.Split(v, listDelimiter)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if t := strings.TrimSpace(p); t != "" {
				out = append(out, t)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// truthy mirrors the loose boolean semantics clients historically relied
// on: absent, false, zero and the empty string are false; everything
// else, including non-empty collections, is true.
func truthy(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		return true
	}
}

func coerceString(raw any, def string) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return def, true
	case string:
		if v == "" {
			return def, true
		}
		return v, true
	default:
		return "", false
	}
}

func coerceNullableString(raw any) (any, bool) {
	switch v := raw.(type) {
	case nil:
		return nil, true
	case string:
		if v == "" {
			return nil, true
		}
		return v, true
	default:
		return nil, false
	}
}
