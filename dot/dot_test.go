package dot_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abmmhasan/Bucket/dot"
)

func makeNested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
			"roles": []any{"admin", "editor"},
		},
		"score": 42,
	}
}

func TestGet(t *testing.T) {
	m := makeNested()
	if v := dot.Get(m, "user.name"); v != "Alice" {
		t.Fatalf("Get user.name = %v; want Alice", v)
	}
	if v := dot.Get(m, "user.address.city"); v != "London" {
		t.Fatalf("Get city = %v; want London", v)
	}
	if v := dot.Get(m, "score"); v != 42 {
		t.Fatalf("Get score = %v; want 42", v)
	}
	if v := dot.Get(m, "user.roles.0"); v != "admin" {
		t.Fatalf("Get roles.0 = %v; want admin", v)
	}
	if v := dot.Get(m, "user.roles.1"); v != "editor" {
		t.Fatalf("Get roles.1 = %v; want editor", v)
	}
}

func TestGetDefault(t *testing.T) {
	m := map[string]any{
		"db": map[string]any{"host": "localhost", "port": 3306},
	}
	if v := dot.Get(m, "db.user", "root"); v != "root" {
		t.Fatalf("Get db.user = %v; want root", v)
	}
	if v := dot.Get(m, "db.port"); v != 3306 {
		t.Fatalf("Get db.port = %v; want 3306", v)
	}
	if v := dot.Get(m, "missing"); v != nil {
		t.Fatalf("Get missing = %v; want nil", v)
	}
	// No partial matching: dotless absent key falls straight to the default.
	if v := dot.Get(m, "host", "none"); v != "none" {
		t.Fatalf("Get host = %v; want none", v)
	}
	// Traversal through a scalar fails to the default too.
	if v := dot.Get(m, "db.port.deep", "none"); v != "none" {
		t.Fatalf("Get db.port.deep = %v; want none", v)
	}
}

func TestGetLazyDefault(t *testing.T) {
	m := makeNested()
	calls := 0
	producer := func() any { calls++; return "fallback" }

	if v := dot.Get(m, "user.name", producer); v != "Alice" {
		t.Fatalf("Get with producer = %v; want Alice", v)
	}
	if calls != 0 {
		t.Fatalf("producer invoked %d times on a hit; want 0", calls)
	}
	if v := dot.Get(m, "user.missing", producer); v != "fallback" {
		t.Fatalf("Get miss with producer = %v; want fallback", v)
	}
	if calls != 1 {
		t.Fatalf("producer invoked %d times on a miss; want 1", calls)
	}
}

func TestGetTopLevelDottedKey(t *testing.T) {
	m := map[string]any{"a.b": "literal", "a": map[string]any{"b": "nested"}}
	if v := dot.Get(m, "a.b"); v != "literal" {
		t.Fatalf("Get a.b = %v; want the literal top-level entry", v)
	}
}

func TestGetMany(t *testing.T) {
	m := makeNested()
	got := dot.GetMany(m, map[string]any{
		"user.name":    nil,
		"user.missing": "dflt",
		"score":        0,
	})
	want := map[string]any{
		"user.name":    "Alice",
		"user.missing": "dflt",
		"score":        42,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GetMany mismatch (-want +got):\n%s", diff)
	}
}

func TestPluck(t *testing.T) {
	m := makeNested()
	got := dot.Pluck(m, []string{"user.name", "user.nope"}, "x")
	if got["user.name"] != "Alice" || got["user.nope"] != "x" {
		t.Fatalf("Pluck = %v", got)
	}
	if len(got) != 2 {
		t.Fatalf("Pluck returned %d entries; want 2", len(got))
	}
}

func TestFirstLastTokens(t *testing.T) {
	m := map[string]any{
		"db": map[string]any{"host": "localhost", "port": 3306},
	}
	// Map keys enumerate in sorted order: host before port.
	if v := dot.Get(m, "db.{first}"); v != "localhost" {
		t.Fatalf("Get db.{first} = %v; want localhost", v)
	}
	if v := dot.Get(m, "db.{last}"); v != 3306 {
		t.Fatalf("Get db.{last} = %v; want 3306", v)
	}

	s := map[string]any{"roles": []any{"admin", "editor", "viewer"}}
	if v := dot.Get(s, "roles.{first}"); v != "admin" {
		t.Fatalf("Get roles.{first} = %v; want admin", v)
	}
	if v := dot.Get(s, "roles.{last}"); v != "viewer" {
		t.Fatalf("Get roles.{last} = %v; want viewer", v)
	}
}

func TestFirstLastOnEmptyContainer(t *testing.T) {
	m := map[string]any{"empty": map[string]any{}, "scalar": 7}
	if v := dot.Get(m, "empty.{first}", "dflt"); v != "dflt" {
		t.Fatalf("Get empty.{first} = %v; want dflt", v)
	}
	if v := dot.Get(m, "scalar.{last}", "dflt"); v != "dflt" {
		t.Fatalf("Get scalar.{last} = %v; want dflt", v)
	}
}

func TestEscapedTokens(t *testing.T) {
	m := map[string]any{
		"*":       "star",
		"{first}": "first-lit",
		"cfg":     map[string]any{"*": "nested-star"},
	}
	if v := dot.Get(m, `\*`); v != "star" {
		t.Fatalf(`Get \* = %v; want star`, v)
	}
	if v := dot.Get(m, `\{first}`); v != "first-lit" {
		t.Fatalf(`Get \{first} = %v; want first-lit`, v)
	}
	if v := dot.Get(m, `cfg.\*`); v != "nested-star" {
		t.Fatalf(`Get cfg.\* = %v; want nested-star`, v)
	}
	if !dot.Has(m, `\*`) {
		t.Fatal(`Has \* should be true`)
	}
	dot.Forget(m, `\*`)
	if _, ok := m["*"]; ok {
		t.Fatal(`Forget \* did not remove the literal "*" key`)
	}
}

func TestSet(t *testing.T) {
	m := map[string]any{}
	dot.Set(m, "session.timeout", 120)
	want := map[string]any{"session": map[string]any{"timeout": 120}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("Set mismatch (-want +got):\n%s", diff)
	}
}

func TestSetIdempotent(t *testing.T) {
	once := map[string]any{}
	dot.Set(once, "a.b.c", 1)
	twice := map[string]any{}
	dot.Set(twice, "a.b.c", 1)
	dot.Set(twice, "a.b.c", 1)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("repeated Set diverged (-once +twice):\n%s", diff)
	}
}

func TestSetOverwritesExisting(t *testing.T) {
	m := makeNested()
	dot.Set(m, "user.name", "Bob")
	if dot.Get(m, "user.name") != "Bob" {
		t.Fatal("Set did not overwrite")
	}
}

func TestSetMakesRoomThroughScalar(t *testing.T) {
	m := map[string]any{"a": 1}
	dot.Set(m, "a.b", 2)
	if v := dot.Get(m, "a.b"); v != 2 {
		t.Fatalf("Set through scalar: a.b = %v; want 2", v)
	}
}

func TestSetCreatesSlicesForIndexSegments(t *testing.T) {
	m := map[string]any{}
	dot.Set(m, "tags.0", "go")
	dot.Set(m, "tags.1", "php")
	want := map[string]any{"tags": []any{"go", "php"}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("Set index segments (-want +got):\n%s", diff)
	}
	dot.Set(m, "tags.3", "late")
	if v := dot.Get(m, "tags.2"); v != nil {
		t.Fatalf("gap element = %v; want nil padding", v)
	}
}

func TestFill(t *testing.T) {
	m := map[string]any{}
	dot.Fill(m, "a.b", "first")
	dot.Fill(m, "a.b", "second")
	if v := dot.Get(m, "a.b"); v != "first" {
		t.Fatalf("Fill overwrote: a.b = %v; want first", v)
	}
	dot.Set(m, "a.b", "third")
	if v := dot.Get(m, "a.b"); v != "third" {
		t.Fatalf("Set after Fill: a.b = %v; want third", v)
	}
}

func TestSetMany(t *testing.T) {
	m := map[string]any{}
	dot.SetMany(m, map[string]any{
		"db.host":  "localhost",
		"db.port":  3306,
		"app.name": "bucket",
	})
	if dot.Get(m, "db.host") != "localhost" || dot.Get(m, "app.name") != "bucket" {
		t.Fatalf("SetMany = %v", m)
	}
}

func TestFillMany(t *testing.T) {
	m := map[string]any{"a": 1}
	dot.FillMany(m, map[string]any{"a": 2, "b": 3})
	if m["a"] != 1 || m["b"] != 3 {
		t.Fatalf("FillMany = %v; want a=1 b=3", m)
	}
}

func TestReplace(t *testing.T) {
	m := map[string]any{"old": 1}
	dot.Replace(m, map[string]any{"new": 2})
	want := map[string]any{"new": 2}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("Replace (-want +got):\n%s", diff)
	}
}

func TestHas(t *testing.T) {
	m := makeNested()
	if !dot.Has(m, "user.name") {
		t.Fatal("Has user.name should be true")
	}
	if !dot.Has(m, "user.address.city", "score") {
		t.Fatal("Has with multiple keys should be true")
	}
	if dot.Has(m, "user.name", "missing") {
		t.Fatal("Has should require every key to exist")
	}
	if dot.Has(m, "user.name.deep") {
		t.Fatal("Has beyond scalar should be false")
	}
	if dot.Has(m) {
		t.Fatal("Has with no keys should be false")
	}
}

func TestHasNilValue(t *testing.T) {
	m := map[string]any{"a": map[string]any{"b": nil}}
	if !dot.Has(m, "a.b") {
		t.Fatal("Has should count an explicit nil as existing")
	}
}

func TestHasAny(t *testing.T) {
	m := makeNested()
	if !dot.HasAny(m, "missing", "score") {
		t.Fatal("HasAny should be true")
	}
	if dot.HasAny(m, "x", "y") {
		t.Fatal("HasAny should be false")
	}
}

func TestForget(t *testing.T) {
	m := map[string]any{
		"user": map[string]any{"name": "Alice", "email": "a@x.com"},
	}
	dot.Forget(m, "user.email")
	want := map[string]any{"user": map[string]any{"name": "Alice"}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("Forget (-want +got):\n%s", diff)
	}
}

func TestForgetThenHas(t *testing.T) {
	m := makeNested()
	for _, key := range []string{"user.address.city", "user.address", "score"} {
		if !dot.Has(m, key) {
			t.Fatalf("precondition: %q should exist", key)
		}
		dot.Forget(m, key)
		if dot.Has(m, key) {
			t.Fatalf("Forget(%q) left the key behind", key)
		}
	}
}

func TestForgetSliceIndexSplices(t *testing.T) {
	m := map[string]any{"roles": []any{"a", "b", "c"}}
	dot.Forget(m, "roles.1")
	want := map[string]any{"roles": []any{"a", "c"}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("Forget slice index (-want +got):\n%s", diff)
	}
}

func TestForgetMissingIntermediate(t *testing.T) {
	m := makeNested()
	dot.Forget(m, "nope.deep.key", "score.deep")
	if !dot.Has(m, "user.name") || !dot.Has(m, "score") {
		t.Fatal("Forget with missing intermediates damaged siblings")
	}
}
