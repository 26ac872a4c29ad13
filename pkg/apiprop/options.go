package apiprop

// Options is the configuration record accumulated by a Builder. String keys
// use the empty string for "unset", Enum uses nil, and boolean and numeric
// keys use nil pointers so an explicit false or zero stays distinguishable
// from an absent key.
type Options struct {
	Type             Type     `json:"type,omitempty" yaml:"type,omitempty"`
	Format           Format   `json:"format,omitempty" yaml:"format,omitempty"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	Title            string   `json:"title,omitempty" yaml:"title,omitempty"`
	Enum             []any    `json:"enum,omitempty" yaml:"enum,omitempty"`
	IsArray          *bool    `json:"isArray,omitempty" yaml:"isArray,omitempty"`
	Nullable         *bool    `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Required         *bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	ExclusiveMinimum *bool    `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMaximum *bool    `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty" yaml:"multipleOf,omitempty"`
	Pattern          string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Has reports whether key is set on the record.
func (o Options) Has(key Key) bool {
	switch key {
	case KeyType:
		return o.Type != TypeNotSet
	case KeyFormat:
		return o.Format != NotSet
	case KeyDescription:
		return o.Description != ""
	case KeyTitle:
		return o.Title != ""
	case KeyEnum:
		return o.Enum != nil
	case KeyIsArray:
		return o.IsArray != nil
	case KeyNullable:
		return o.Nullable != nil
	case KeyRequired:
		return o.Required != nil
	case KeyMinimum:
		return o.Minimum != nil
	case KeyExclusiveMinimum:
		return o.ExclusiveMinimum != nil
	case KeyMaximum:
		return o.Maximum != nil
	case KeyExclusiveMaximum:
		return o.ExclusiveMaximum != nil
	case KeyMultipleOf:
		return o.MultipleOf != nil
	case KeyPattern:
		return o.Pattern != ""
	default:
		return false
	}
}

// Keys returns the keys set on the record in canonical order.
func (o Options) Keys() []Key {
	var keys []Key
	for _, key := range allKeys {
		if o.Has(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// IsEmpty reports whether no key is set.
func (o Options) IsEmpty() bool {
	return len(o.Keys()) == 0
}

// Clone returns a deep copy that shares no pointers or slices with o.
func (o Options) Clone() Options {
	out := o
	out.Enum = cloneEnum(o.Enum)
	out.IsArray = cloneBool(o.IsArray)
	out.Nullable = cloneBool(o.Nullable)
	out.Required = cloneBool(o.Required)
	out.Minimum = cloneFloat(o.Minimum)
	out.ExclusiveMinimum = cloneBool(o.ExclusiveMinimum)
	out.Maximum = cloneFloat(o.Maximum)
	out.ExclusiveMaximum = cloneBool(o.ExclusiveMaximum)
	out.MultipleOf = cloneFloat(o.MultipleOf)
	return out
}

// patch is a partial record. A key mapped to nil is carried as an explicit
// "unset" and clears the key on merge.
type patch map[Key]any

// merge overlays update onto a copy of o. Keys absent from update keep
// their current value.
func (o Options) merge(update patch) Options {
	out := o.Clone()
	for key, value := range update {
		out.set(key, value)
	}
	return out
}

// patch returns the keys set on o as a partial record.
func (o Options) patch() patch {
	update := make(patch)
	for _, key := range o.Keys() {
		update[key] = o.get(key)
	}
	return update
}

func (o Options) get(key Key) any {
	switch key {
	case KeyType:
		return o.Type
	case KeyFormat:
		return o.Format
	case KeyDescription:
		return o.Description
	case KeyTitle:
		return o.Title
	case KeyEnum:
		return cloneEnum(o.Enum)
	case KeyIsArray:
		return derefBool(o.IsArray)
	case KeyNullable:
		return derefBool(o.Nullable)
	case KeyRequired:
		return derefBool(o.Required)
	case KeyMinimum:
		return derefFloat(o.Minimum)
	case KeyExclusiveMinimum:
		return derefBool(o.ExclusiveMinimum)
	case KeyMaximum:
		return derefFloat(o.Maximum)
	case KeyExclusiveMaximum:
		return derefBool(o.ExclusiveMaximum)
	case KeyMultipleOf:
		return derefFloat(o.MultipleOf)
	case KeyPattern:
		return o.Pattern
	default:
		return nil
	}
}

// set writes value under key. Values of the wrong dynamic type, nil
// included, leave the key unset.
func (o *Options) set(key Key, value any) {
	switch key {
	case KeyType:
		v, _ := value.(Type)
		o.Type = v
	case KeyFormat:
		v, _ := value.(Format)
		o.Format = v
	case KeyDescription:
		v, _ := value.(string)
		o.Description = v
	case KeyTitle:
		v, _ := value.(string)
		o.Title = v
	case KeyEnum:
		v, _ := value.([]any)
		o.Enum = cloneEnum(v)
	case KeyIsArray:
		o.IsArray = boolValue(value)
	case KeyNullable:
		o.Nullable = boolValue(value)
	case KeyRequired:
		o.Required = boolValue(value)
	case KeyMinimum:
		o.Minimum = floatValue(value)
	case KeyExclusiveMinimum:
		o.ExclusiveMinimum = boolValue(value)
	case KeyMaximum:
		o.Maximum = floatValue(value)
	case KeyExclusiveMaximum:
		o.ExclusiveMaximum = boolValue(value)
	case KeyMultipleOf:
		o.MultipleOf = floatValue(value)
	case KeyPattern:
		v, _ := value.(string)
		o.Pattern = v
	}
}

func boolValue(value any) *bool {
	v, ok := value.(bool)
	if !ok {
		return nil
	}
	return &v
}

func floatValue(value any) *float64 {
	v, ok := value.(float64)
	if !ok {
		return nil
	}
	return &v
}

func derefBool(in *bool) any {
	if in == nil {
		return nil
	}
	return *in
}

func derefFloat(in *float64) any {
	if in == nil {
		return nil
	}
	return *in
}

func cloneBool(in *bool) *bool {
	if in == nil {
		return nil
	}
	value := *in
	return &value
}

func cloneFloat(in *float64) *float64 {
	if in == nil {
		return nil
	}
	value := *in
	return &value
}

func cloneEnum(in []any) []any {
	if in == nil {
		return nil
	}
	return append(make([]any, 0, len(in)), in...)
}
