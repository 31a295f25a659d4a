package replay

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Decode reads a decoded replay document. Property lists are walked in
// document order so duplicate keys survive. Values are either externally
// tagged ({"Int": 3}) or plain JSON whose kind is inferred; tags the reader
// does not know become KindUnknown instead of failing the whole document.
func Decode(data []byte) (*Replay, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrNotObject
	}

	r := &Replay{
		HeaderSize:   uint32(root.Get("header_size").Uint()),
		HeaderCRC:    uint32(root.Get("header_crc").Uint()),
		MajorVersion: int32(root.Get("major_version").Int()),
		MinorVersion: int32(root.Get("minor_version").Int()),
		NetVersion:   int32(root.Get("net_version").Int()),
		GameType:     root.Get("game_type").String(),
		Properties:   decodeProperties(root.Get("properties")),
	}
	r.NetworkFrames = decodeFrames(root.Get("network_frames"))
	return r, nil
}

// decodeProperties accepts either a list of [name, value] pairs or an object.
func decodeProperties(res gjson.Result) Properties {
	var props Properties
	switch {
	case res.IsArray():
		res.ForEach(func(_, pair gjson.Result) bool {
			kv := pair.Array()
			if len(kv) != 2 || kv[0].Type != gjson.String {
				return true
			}
			name := kv[0].String()
			props = append(props, Property{Name: name, Value: decodeValue(name, kv[1])})
			return true
		})
	case res.IsObject():
		res.ForEach(func(key, val gjson.Result) bool {
			name := key.String()
			props = append(props, Property{Name: name, Value: decodeValue(name, val)})
			return true
		})
	}
	return props
}

// singleEntry unwraps an externally tagged value {"Tag": body}.
func singleEntry(res gjson.Result) (string, gjson.Result, bool) {
	if !res.IsObject() {
		return "", gjson.Result{}, false
	}
	var (
		tag  string
		body gjson.Result
		n    int
	)
	res.ForEach(func(key, val gjson.Result) bool {
		tag, body = key.String(), val
		n++
		return n < 2
	})
	return tag, body, n == 1
}

// valueTags are the externally tagged variants decodeTagged understands.
var valueTags = map[string]bool{
	"Str": true, "Name": true, "Int": true, "Float": true, "Bool": true,
	"QWord": true, "Byte": true, "Struct": true, "Array": true,
}

// qwordKeys hold 64-bit ids that plain documents write as decimal strings.
var qwordKeys = map[string]bool{
	"Uid": true,
}

func decodeValue(name string, res gjson.Result) Value {
	if tag, body, ok := singleEntry(res); ok && valueTags[tag] {
		return decodeTagged(tag, body)
	}
	return inferValue(name, res)
}

// inferValue types an untagged value from its JSON shape.
func inferValue(name string, res gjson.Result) Value {
	switch res.Type {
	case gjson.String:
		if qwordKeys[name] {
			if q, err := strconv.ParseUint(strings.TrimSpace(res.Str), 10, 64); err == nil {
				return Value{Kind: KindQWord, QWord: q}
			}
		}
		return Value{Kind: KindStr, Str: res.Str}
	case gjson.Number:
		return inferNumber(name, res)
	case gjson.True, gjson.False:
		return Value{Kind: KindBool, Bool: res.Bool()}
	case gjson.JSON:
		switch {
		case res.IsArray():
			return decodeTagged("Array", res)
		case res.Get("kind").Exists():
			return decodeTagged("Byte", res)
		case res.Get("fields").Exists():
			return decodeTagged("Struct", res)
		}
	}
	return Value{}
}

// inferNumber maps integers to Int (or QWord past int32 range) and anything
// with a fraction or exponent to Float.
func inferNumber(name string, res gjson.Result) Value {
	if strings.ContainsAny(res.Raw, ".eE") {
		return Value{Kind: KindFloat, Float: res.Float()}
	}
	if !qwordKeys[name] {
		if i, err := strconv.ParseInt(res.Raw, 10, 32); err == nil {
			return Value{Kind: KindInt, Int: int32(i)}
		}
	}
	if q, err := strconv.ParseUint(res.Raw, 10, 64); err == nil {
		return Value{Kind: KindQWord, QWord: q}
	}
	return Value{Kind: KindFloat, Float: res.Float()}
}

func decodeTagged(tag string, body gjson.Result) Value {
	switch tag {
	case "Str", "Name":
		if body.Type != gjson.String {
			return Value{}
		}
		kind := KindStr
		if tag == "Name" {
			kind = KindName
		}
		return Value{Kind: kind, Str: body.String()}
	case "Int":
		if body.Type != gjson.Number {
			return Value{}
		}
		return Value{Kind: KindInt, Int: int32(body.Int())}
	case "Float":
		if body.Type != gjson.Number {
			return Value{}
		}
		return Value{Kind: KindFloat, Float: body.Float()}
	case "Bool":
		if body.Type != gjson.True && body.Type != gjson.False {
			return Value{}
		}
		return Value{Kind: KindBool, Bool: body.Bool()}
	case "QWord":
		if body.Type != gjson.Number && body.Type != gjson.String {
			return Value{}
		}
		q, err := strconv.ParseUint(strings.TrimSpace(body.String()), 10, 64)
		if err != nil {
			return Value{}
		}
		return Value{Kind: KindQWord, QWord: q}
	case "Byte":
		if !body.IsObject() {
			return Value{}
		}
		b := ByteValue{Kind: body.Get("kind").String()}
		if v := body.Get("value"); v.Type == gjson.String {
			b.Value, b.HasValue = v.String(), true
		}
		return Value{Kind: KindByte, Byte: b}
	case "Struct":
		if !body.IsObject() {
			return Value{}
		}
		return Value{Kind: KindStruct, Struct: StructValue{
			Name:   body.Get("name").String(),
			Fields: decodeProperties(body.Get("fields")),
		}}
	case "Array":
		if !body.IsArray() {
			return Value{}
		}
		elems := body.Array()
		arr := make([]Properties, 0, len(elems))
		for _, e := range elems {
			arr = append(arr, decodeProperties(e))
		}
		return Value{Kind: KindArray, Array: arr}
	}
	return Value{}
}

func decodeFrames(res gjson.Result) *NetworkFrames {
	if !res.Exists() || res.Type == gjson.Null {
		return nil
	}
	nf := &NetworkFrames{}
	res.Get("frames").ForEach(func(_, f gjson.Result) bool {
		frame := Frame{
			Time:  f.Get("time").Float(),
			Delta: f.Get("delta").Float(),
		}
		f.Get("updated_actors").ForEach(func(_, a gjson.Result) bool {
			frame.UpdatedActors = append(frame.UpdatedActors, UpdatedActor{
				ActorID:   int32(a.Get("actor_id").Int()),
				StreamID:  int32(a.Get("stream_id").Int()),
				ObjectID:  int32(a.Get("object_id").Int()),
				Attribute: decodeAttribute(a.Get("attribute")),
			})
			return true
		})
		nf.Frames = append(nf.Frames, frame)
		return true
	})
	return nf
}

func decodeAttribute(res gjson.Result) Attribute {
	tag, body, ok := singleEntry(res)
	if !ok {
		return Attribute{}
	}
	switch tag {
	case "String":
		if body.Type == gjson.String {
			return Attribute{Kind: AttrString, Variant: tag, String: body.String()}
		}
	case "TeamLoadout":
		if body.IsObject() {
			return Attribute{Kind: AttrTeamLoadout, Variant: tag, TeamLoadout: TeamLoadout{
				Blue:   decodeLoadout(body.Get("blue")),
				Orange: decodeLoadout(body.Get("orange")),
			}}
		}
	}
	return Attribute{Kind: AttrOther, Variant: tag}
}

func decodeLoadout(res gjson.Result) Loadout {
	u32 := func(key string) uint32 { return uint32(res.Get(key).Uint()) }
	return Loadout{
		Version:       uint8(res.Get("version").Uint()),
		Body:          u32("body"),
		Decal:         u32("decal"),
		Wheels:        u32("wheels"),
		RocketTrail:   u32("rocket_trail"),
		Antenna:       u32("antenna"),
		Topper:        u32("topper"),
		EngineAudio:   u32("engine_audio"),
		Trail:         u32("trail"),
		GoalExplosion: u32("goal_explosion"),
		Banner:        u32("banner"),
	}
}
