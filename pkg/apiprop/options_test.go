package apiprop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeIsKeyLocal(t *testing.T) {
	t.Parallel()

	base := Options{
		Type:        TypeString,
		Format:      FormatEmail,
		Title:       "Contact",
		Required:    boolPtr(true),
		Minimum:     floatPtr(3),
		Description: "Primary address",
	}

	cases := []struct {
		name   string
		update patch
		want   Options
	}{
		{
			name:   "empty update keeps everything",
			update: patch{},
			want:   base,
		},
		{
			name:   "overwrites only carried keys",
			update: patch{KeyTitle: "Email", KeyRequired: false},
			want: Options{
				Type:        TypeString,
				Format:      FormatEmail,
				Title:       "Email",
				Required:    boolPtr(false),
				Minimum:     floatPtr(3),
				Description: "Primary address",
			},
		},
		{
			name:   "explicit unset clears",
			update: patch{KeyFormat: NotSet, KeyMinimum: nil},
			want: Options{
				Type:        TypeString,
				Title:       "Contact",
				Required:    boolPtr(true),
				Description: "Primary address",
			},
		},
		{
			name:   "adds new keys",
			update: patch{KeyPattern: "@", KeyEnum: []any{"a@b.c"}},
			want: Options{
				Type:        TypeString,
				Format:      FormatEmail,
				Title:       "Contact",
				Required:    boolPtr(true),
				Minimum:     floatPtr(3),
				Description: "Primary address",
				Pattern:     "@",
				Enum:        []any{"a@b.c"},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := base.merge(tc.update)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("merge mismatch (-want +got):\n%s", diff)
			}
			for _, key := range allKeys {
				if _, carried := tc.update[key]; carried {
					continue
				}
				if diff := cmp.Diff(base.get(key), got.get(key)); diff != "" {
					t.Fatalf("key %s changed without being carried:\n%s", key, diff)
				}
			}
		})
	}
}

func TestMergeDoesNotMutateReceiver(t *testing.T) {
	base := Options{Minimum: floatPtr(1)}
	_ = base.merge(patch{KeyMinimum: 2.0})
	if *base.Minimum != 1 {
		t.Fatalf("receiver mutated: %v", *base.Minimum)
	}
}

func TestKeysCanonicalOrder(t *testing.T) {
	opts := Options{
		Pattern:  "x",
		Type:     TypeString,
		Nullable: boolPtr(false),
	}
	want := []Key{KeyType, KeyNullable, KeyPattern}
	if diff := cmp.Diff(want, opts.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if len(Keys()) != 14 {
		t.Fatalf("expected 14 recognised keys, got %d", len(Keys()))
	}
}

func TestPatchRoundTrip(t *testing.T) {
	opts := Options{
		Type:             TypeInteger,
		Format:           FormatInt64,
		Enum:             []any{1, 2},
		IsArray:          boolPtr(true),
		ExclusiveMaximum: boolPtr(false),
		Maximum:          floatPtr(9),
		MultipleOf:       floatPtr(3),
	}
	got := Options{}.merge(opts.patch())
	if diff := cmp.Diff(opts, got); diff != "" {
		t.Fatalf("patch lost keys (-want +got):\n%s", diff)
	}
}

func TestLookupPreset(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		typ    Type
		format Format
	}{
		{"int32", TypeInteger, FormatInt32},
		{"DateTime", TypeString, FormatDateTime},
		{"date_time", TypeString, FormatDateTime},
		{" IPv6 ", TypeString, FormatIPv6},
		{"boolean", TypeBoolean, NotSet},
	}
	for _, tc := range cases {
		preset, ok := LookupPreset(tc.name)
		if !ok {
			t.Fatalf("preset %q not found", tc.name)
		}
		got := preset(Api()).Conf()
		if got.Type != tc.typ || got.Format != tc.format {
			t.Fatalf("preset %q: got %q/%q", tc.name, got.Type, got.Format)
		}
	}

	if _, ok := LookupPreset("decimal"); ok {
		t.Fatalf("unexpected preset for decimal")
	}
	if _, ok := LookupPreset(""); ok {
		t.Fatalf("empty name must not resolve")
	}
	if len(Presets()) != 19 {
		t.Fatalf("expected 19 presets, got %d", len(Presets()))
	}
	for _, name := range Presets() {
		if _, ok := LookupPreset(name); !ok {
			t.Fatalf("listed preset %q does not resolve", name)
		}
	}
}

func TestTypesAndFormatsTables(t *testing.T) {
	if diff := cmp.Diff([]Type{"number", "integer", "string", "boolean"}, Types()); diff != "" {
		t.Fatalf("types mismatch:\n%s", diff)
	}
	if got := len(Formats()); got != 15 {
		t.Fatalf("expected 15 formats, got %d", got)
	}
	types := Types()
	types[0] = "mutated"
	if Types()[0] != TypeNumber {
		t.Fatalf("Types must return a copy")
	}
}
