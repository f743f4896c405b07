package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	FloatType
	StringType
	DateType
	DateTimeType
	VersionType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:     "Null",
		BoolType:     "Bool",
		IntType:      "Int",
		FloatType:    "Float",
		StringType:   "String",
		DateType:     "Date",
		DateTimeType: "DateTime",
		VersionType:  "Version",
		ArrayType:    "Array",
		ObjectType:   "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":     NullType,
		"Bool":     BoolType,
		"Int":      IntType,
		"Float":    FloatType,
		"String":   StringType,
		"Date":     DateType,
		"DateTime": DateTimeType,
		"Version":  VersionType,
		"Array":    ArrayType,
		"Object":   ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		FloatType,
		StringType,
		DateType,
		DateTimeType,
		VersionType,
		ArrayType,
		ObjectType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// IsNumber reports whether t is one of the numeric kinds.
func (t Type) IsNumber() bool {
	return t == IntType || t == FloatType
}
