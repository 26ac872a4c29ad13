package apiprop

import "strings"

// Preset is a zero-argument transition that sets a fixed type/format pair.
type Preset func(Builder) Builder

type namedPreset struct {
	name  string
	apply Preset
}

var presets = []namedPreset{
	{"number", Builder.Number},
	{"float", Builder.Float},
	{"double", Builder.Double},
	{"integer", Builder.Integer},
	{"int32", Builder.Int32},
	{"int64", Builder.Int64},
	{"string", Builder.String},
	{"date", Builder.Date},
	{"date-time", Builder.DateTime},
	{"password", Builder.Password},
	{"byte", Builder.Byte},
	{"binary", Builder.Binary},
	{"email", Builder.Email},
	{"uuid", Builder.UUID},
	{"uri", Builder.URI},
	{"hostname", Builder.Hostname},
	{"ipv4", Builder.IPv4},
	{"ipv6", Builder.IPv6},
	{"boolean", Builder.Boolean},
}

// Presets lists the canonical preset names.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.name)
	}
	return names
}

// LookupPreset resolves a preset by name. Matching ignores case and the
// separators '-', '_' and ' ', so "DateTime", "date_time" and "date-time"
// all resolve to the same preset.
func LookupPreset(name string) (Preset, bool) {
	want := normalisePresetName(name)
	if want == "" {
		return nil, false
	}
	for _, p := range presets {
		if normalisePresetName(p.name) == want {
			return p.apply, true
		}
	}
	return nil, false
}

func normalisePresetName(raw string) string {
	var builder strings.Builder
	builder.Grow(len(raw))
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch r {
		case '-', '_', ' ':
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
