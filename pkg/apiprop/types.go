package apiprop

// Type is the value of the schema "type" keyword.
type Type string

const (
	TypeNotSet  Type = ""
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeString  Type = "string"
	TypeBoolean Type = "boolean"
)

// Format is the value of the schema "format" keyword. NotSet clears it.
type Format string

const (
	NotSet Format = ""

	// number
	FormatFloat  Format = "float"
	FormatDouble Format = "double"

	// integer
	FormatInt32 Format = "int32"
	FormatInt64 Format = "int64"

	// string
	FormatDate     Format = "date"      // RFC 3339 full-date, 2017-07-21
	FormatDateTime Format = "date-time" // RFC 3339 date-time, 2017-07-21T17:32:28Z
	FormatPassword Format = "password"
	FormatByte     Format = "byte"
	FormatBinary   Format = "binary"
	FormatEmail    Format = "email"
	FormatUUID     Format = "uuid"
	FormatURI      Format = "uri"
	FormatHostname Format = "hostname"
	FormatIPv4     Format = "ipv4"
	FormatIPv6     Format = "ipv6"
)

// Key names an option of the configuration record.
type Key string

const (
	KeyType             Key = "type"
	KeyFormat           Key = "format"
	KeyDescription      Key = "description"
	KeyTitle            Key = "title"
	KeyEnum             Key = "enum"
	KeyIsArray          Key = "isArray"
	KeyNullable         Key = "nullable"
	KeyRequired         Key = "required"
	KeyMinimum          Key = "minimum"
	KeyExclusiveMinimum Key = "exclusiveMinimum"
	KeyMaximum          Key = "maximum"
	KeyExclusiveMaximum Key = "exclusiveMaximum"
	KeyMultipleOf       Key = "multipleOf"
	KeyPattern          Key = "pattern"
)

var allKeys = []Key{
	KeyType,
	KeyFormat,
	KeyDescription,
	KeyTitle,
	KeyEnum,
	KeyIsArray,
	KeyNullable,
	KeyRequired,
	KeyMinimum,
	KeyExclusiveMinimum,
	KeyMaximum,
	KeyExclusiveMaximum,
	KeyMultipleOf,
	KeyPattern,
}

var allTypes = []Type{TypeNumber, TypeInteger, TypeString, TypeBoolean}

var allFormats = []Format{
	FormatFloat, FormatDouble,
	FormatInt32, FormatInt64,
	FormatDate, FormatDateTime, FormatPassword, FormatByte, FormatBinary,
	FormatEmail, FormatUUID, FormatURI, FormatHostname, FormatIPv4, FormatIPv6,
}

// Keys lists every recognised option key in canonical order.
func Keys() []Key {
	return append([]Key(nil), allKeys...)
}

// Types lists the recognised type values.
func Types() []Type {
	return append([]Type(nil), allTypes...)
}

// Formats lists the recognised format values, NotSet excluded.
func Formats() []Format {
	return append([]Format(nil), allFormats...)
}
