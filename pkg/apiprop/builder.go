package apiprop

// Builder accumulates a configuration record through chained calls. The
// zero value is an empty builder using the PassThrough decorator.
type Builder struct {
	opts      Options
	decorator Decorator
}

// Api returns a builder seeded with the keys set on the optional initial
// records, applied in order.
func Api(initial ...Options) Builder {
	var b Builder
	for _, opts := range initial {
		b = b.merge(opts.patch())
	}
	return b
}

// ApiProp returns a builder whose only key is title.
func ApiProp(title string) Builder {
	return Api().Title(title)
}

func (b Builder) merge(update patch) Builder {
	b.opts = b.opts.merge(update)
	return b
}

// Conf returns a copy of the current record. Later calls on the builder do
// not affect the returned value and vice versa.
func (b Builder) Conf() Options {
	return b.opts.Clone()
}

// Apply overlays every key set on opts.
func (b Builder) Apply(opts Options) Builder {
	return b.merge(opts.patch())
}

// WithDecorator returns a builder that hands its record to d on Decorate.
func (b Builder) WithDecorator(d Decorator) Builder {
	b.decorator = d
	return b
}

// Decorate passes the record to the builder's decorator and returns its
// result.
func (b Builder) Decorate() (any, error) {
	return b.DecorateWith(b.decorator)
}

// DecorateWith passes the record to d. A nil d behaves like PassThrough.
func (b Builder) DecorateWith(d Decorator) (any, error) {
	if d == nil {
		d = PassThrough
	}
	return d.Decorate(b.Conf())
}

func (b Builder) Type(t Type) Builder {
	return b.merge(patch{KeyType: t})
}

// Format sets the format. Format(NotSet) clears it.
func (b Builder) Format(f Format) Builder {
	return b.merge(patch{KeyFormat: f})
}

func (b Builder) Description(description string) Builder {
	return b.merge(patch{KeyDescription: description})
}

func (b Builder) Title(title string) Builder {
	return b.merge(patch{KeyTitle: title})
}

// Enum sets the allowed values. Calling it without values clears the key.
func (b Builder) Enum(values ...any) Builder {
	if values == nil {
		return b.merge(patch{KeyEnum: nil})
	}
	return b.merge(patch{KeyEnum: values})
}

func (b Builder) IsArray() Builder { return b.merge(patch{KeyIsArray: true}) }
func (b Builder) IsNotArray() Builder { return b.merge(patch{KeyIsArray: false}) }
func (b Builder) Null() Builder { return b.merge(patch{KeyNullable: true}) }
func (b Builder) NotNull() Builder { return b.merge(patch{KeyNullable: false}) }
func (b Builder) Required() Builder { return b.merge(patch{KeyRequired: true}) }
func (b Builder) NotRequired() Builder { return b.merge(patch{KeyRequired: false}) }

// Number sets type number and clears the format.
func (b Builder) Number() Builder { return b.Type(TypeNumber).Format(NotSet) }
func (b Builder) Float() Builder { return b.Number().Format(FormatFloat) }
func (b Builder) Double() Builder { return b.Number().Format(FormatDouble) }

// Integer sets type integer and clears the format.
func (b Builder) Integer() Builder { return b.Type(TypeInteger).Format(NotSet) }
func (b Builder) Int32() Builder { return b.Integer().Format(FormatInt32) }
func (b Builder) Int64() Builder { return b.Integer().Format(FormatInt64) }

// numeric applies Number unless the type is already number or integer, in
// which case type and format are kept.
func (b Builder) numeric() Builder {
	switch b.opts.Type {
	case TypeNumber, TypeInteger:
		return b
	default:
		return b.Number()
	}
}

// Min sets the lower bound. The optional exclusive flag defaults to false
// (value >= min); true means value > min. exclusiveMinimum is always
// written.
func (b Builder) Min(min float64, exclusive ...bool) Builder {
	return b.numeric().merge(patch{KeyMinimum: min, KeyExclusiveMinimum: first(exclusive)})
}

// ResetMin clears minimum and exclusiveMinimum. Type and format are kept.
func (b Builder) ResetMin() Builder {
	return b.merge(patch{KeyMinimum: nil, KeyExclusiveMinimum: nil})
}

// Max sets the upper bound. The optional exclusive flag defaults to false
// (value <= max); true means value < max.
func (b Builder) Max(max float64, exclusive ...bool) Builder {
	return b.numeric().merge(patch{KeyMaximum: max, KeyExclusiveMaximum: first(exclusive)})
}

// ResetMax clears maximum and exclusiveMaximum.
func (b Builder) ResetMax() Builder {
	return b.merge(patch{KeyMaximum: nil, KeyExclusiveMaximum: nil})
}

// MultipleOf sets multipleOf. n must be greater than 0; this is not checked.
func (b Builder) MultipleOf(n float64) Builder {
	return b.merge(patch{KeyMultipleOf: n})
}

func (b Builder) ResetMultipleOf() Builder {
	return b.merge(patch{KeyMultipleOf: nil})
}

// String sets type string and leaves the format untouched.
func (b Builder) String() Builder { return b.Type(TypeString) }

func (b Builder) stringFormat(f Format) Builder { return b.String().Format(f) }

func (b Builder) Date() Builder { return b.stringFormat(FormatDate) }
func (b Builder) DateTime() Builder { return b.stringFormat(FormatDateTime) }
func (b Builder) Password() Builder { return b.stringFormat(FormatPassword) }
func (b Builder) Byte() Builder { return b.stringFormat(FormatByte) }
func (b Builder) Binary() Builder { return b.stringFormat(FormatBinary) }
func (b Builder) Email() Builder { return b.stringFormat(FormatEmail) }
func (b Builder) UUID() Builder { return b.stringFormat(FormatUUID) }
func (b Builder) URI() Builder { return b.stringFormat(FormatURI) }
func (b Builder) Hostname() Builder { return b.stringFormat(FormatHostname) }
func (b Builder) IPv4() Builder { return b.stringFormat(FormatIPv4) }
func (b Builder) IPv6() Builder { return b.stringFormat(FormatIPv6) }

// Pattern stores the regular expression source as given.
func (b Builder) Pattern(pattern string) Builder {
	return b.merge(patch{KeyPattern: pattern})
}

func (b Builder) Boolean() Builder { return b.Type(TypeBoolean) }

func first(flags []bool) bool {
	if len(flags) == 0 {
		return false
	}
	return flags[0]
}
