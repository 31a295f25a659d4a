package replay

// AsString returns the string carried by a Str or Name value.
func (v Value) AsString() (string, bool) {
	if v.Kind == KindStr || v.Kind == KindName {
		return v.Str, true
	}
	return "", false
}

// AsInt returns the value of an Int.
func (v Value) AsInt() (int32, bool) {
	if v.Kind == KindInt {
		return v.Int, true
	}
	return 0, false
}

// AsFloat returns a Float, widening an Int.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case KindFloat:
		return v.Float, true
	case KindInt:
		return float64(v.Int), true
	}
	return 0, false
}

func (v Value) AsBool() (bool, bool) {
	if v.Kind == KindBool {
		return v.Bool, true
	}
	return false, false
}

func (v Value) AsQWord() (uint64, bool) {
	if v.Kind == KindQWord {
		return v.QWord, true
	}
	return 0, false
}

func (v Value) AsByte() (ByteValue, bool) {
	if v.Kind == KindByte {
		return v.Byte, true
	}
	return ByteValue{}, false
}

func (v Value) AsStruct() (StructValue, bool) {
	if v.Kind == KindStruct {
		return v.Struct, true
	}
	return StructValue{}, false
}

func (v Value) AsArray() ([]Properties, bool) {
	if v.Kind == KindArray {
		return v.Array, true
	}
	return nil, false
}

// Find returns the first property named key.
func (p Properties) Find(key string) (Value, bool) {
	for _, prop := range p {
		if prop.Name == key {
			return prop.Value, true
		}
	}
	return Value{}, false
}

// String returns the string value of key, or def when key is absent or not a
// string.
func (p Properties) String(key, def string) string {
	v, ok := p.Find(key)
	if !ok {
		return def
	}
	if s, ok := v.AsString(); ok {
		return s
	}
	return def
}

// Int returns the integer value of key, or 0.
func (p Properties) Int(key string) int {
	v, ok := p.Find(key)
	if !ok {
		return 0
	}
	i, _ := v.AsInt()
	return int(i)
}

// Float returns the float value of key (integers are widened), or 0.
func (p Properties) Float(key string) float64 {
	v, ok := p.Find(key)
	if !ok {
		return 0
	}
	f, _ := v.AsFloat()
	return f
}

// Struct returns the struct value of key.
func (p Properties) Struct(key string) (StructValue, bool) {
	v, ok := p.Find(key)
	if !ok {
		return StructValue{}, false
	}
	return v.AsStruct()
}

// Array returns the array value of key, or nil.
func (p Properties) Array(key string) []Properties {
	v, ok := p.Find(key)
	if !ok {
		return nil
	}
	arr, _ := v.AsArray()
	return arr
}
