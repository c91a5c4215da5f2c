package profile

import (
	"reflect"
	"testing"
)

func TestCoerceListFromString(t *testing.T) {
	got, ok := Coerce("links", "a, b ,c")
	if !ok {
		t.Fatal("expected list input to be accepted")
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCoerceListPassthrough(t *testing.T) {
	got, ok := Coerce("links", []any{"a", "b"})
	if !ok {
		t.Fatal("expected list input to be accepted")
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", got)
	}
}

func TestCoerceListAbsent(t *testing.T) {
	got, ok := Coerce("links", nil)
	if !ok {
		t.Fatal("expected nil list input to be accepted")
	}
	if !reflect.DeepEqual(got, []string{}) {
		t.Errorf("expected empty list, got %v", got)
	}
}

func TestCoerceListEmptyString(t *testing.T) {
	got, ok := Coerce("links", "")
	if !ok {
		t.Fatal("expected empty string to be accepted")
	}
	if !reflect.DeepEqual(got, []string{}) {
		t.Errorf("expected empty list, got %v", got)
	}
}

func TestCoerceListRejectsScalar(t *testing.T) {
	if _, ok := Coerce("links", 42.0); ok {
		t.Error("expected numeric list input to be rejected")
	}
	if _, ok := Coerce("sections", true); ok {
		t.Error("expected boolean list input to be rejected")
	}
}

func TestCoerceBoolTruthiness(t *testing.T) {
	cases := []struct {
		raw  any
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{"", false},
		{"yes", true},
		{"false", true}, // non-empty string is truthy, as clients relied on
		{0.0, false},
		{1.0, true},
		{[]any{}, true},
		{map[string]any{}, true},
	}
	for _, c := range cases {
		got, ok := Coerce("autoplaySong", c.raw)
		if !ok {
			t.Fatalf("boolean coercion must be total, rejected %v", c.raw)
		}
		if got != c.want {
			t.Errorf("truthy(%v): expected %v, got %v", c.raw, c.want, got)
		}
	}
}

func TestCoerceStringDefault(t *testing.T) {
	got, ok := Coerce("font", nil)
	if !ok || got != "default" {
		t.Errorf("expected default string, got %v (accepted=%v)", got, ok)
	}
	got, ok = Coerce("bio", "")
	if !ok || got != "" {
		t.Errorf("expected empty bio default, got %v (accepted=%v)", got, ok)
	}
	if _, ok := Coerce("font", 12.0); ok {
		t.Error("expected non-string value to be rejected")
	}
}

func TestCoerceNullableString(t *testing.T) {
	got, ok := Coerce("pfpUrl", "")
	if !ok || got != nil {
		t.Errorf("expected empty nullable string to coerce to null, got %v", got)
	}
	got, ok = Coerce("pfpUrl", nil)
	if !ok || got != nil {
		t.Errorf("expected nil to stay null, got %v", got)
	}
	got, ok = Coerce("bannerUrl", "https://example.com/b.png")
	if !ok || got != "https://example.com/b.png" {
		t.Errorf("expected url to pass through, got %v", got)
	}
	if _, ok := Coerce("songEmbed", 7.0); ok {
		t.Error("expected non-string nullable value to be rejected")
	}
}

func TestCoerceUnknownField(t *testing.T) {
	if _, ok := Coerce("nope", "anything"); ok {
		t.Error("expected unknown field to be rejected")
	}
}

// Coercion must be idempotent: feeding accepted output back through the
// same rule returns the same value for every field kind.
func TestCoerceIdempotent(t *testing.T) {
	inputs := map[string]any{
		"links":        "a, b ,c",
		"sections":     []any{"one", "two"},
		"autoplaySong": "truthy",
		"trailEffect":  nil,
		"bio":          "hello",
		"font":         nil,
		"pfpUrl":       "",
		"bannerUrl":    "https://example.com/x.png",
	}
	for name, raw := range inputs {
		first, ok := Coerce(name, raw)
		if !ok {
			t.Fatalf("%s: input rejected", name)
		}
		second, ok := Coerce(name, first)
		if !ok {
			t.Fatalf("%s: canonical output rejected on re-coercion", name)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: expected %v after re-coercion, got %v", name, first, second)
		}
	}
}
