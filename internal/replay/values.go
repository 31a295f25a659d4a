package replay

// Constructors for hand-built property lists.

func Str(s string) Value          { return Value{Kind: KindStr, Str: s} }
func Name(s string) Value         { return Value{Kind: KindName, Str: s} }
func Int(i int32) Value           { return Value{Kind: KindInt, Int: i} }
func Float(f float64) Value       { return Value{Kind: KindFloat, Float: f} }
func Bool(b bool) Value           { return Value{Kind: KindBool, Bool: b} }
func QWord(q uint64) Value        { return Value{Kind: KindQWord, QWord: q} }
func Array(a ...Properties) Value { return Value{Kind: KindArray, Array: a} }

// Byte builds an enumerated byte value with its member label set.
func Byte(kind, value string) Value {
	return Value{Kind: KindByte, Byte: ByteValue{Kind: kind, Value: value, HasValue: true}}
}

func Struct(name string, fields Properties) Value {
	return Value{Kind: KindStruct, Struct: StructValue{Name: name, Fields: fields}}
}

// Prop builds a single property.
func Prop(name string, v Value) Property {
	return Property{Name: name, Value: v}
}
