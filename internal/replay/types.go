// Package replay holds the decoded replay model handed over by the external
// replay decoder, plus the readers and typed accessors the aggregator uses.
package replay

// Kind tags the variant carried by a Value.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindStr
	KindName
	KindInt
	KindFloat
	KindBool
	KindQWord
	KindByte
	KindStruct
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindStr:
		return "Str"
	case KindName:
		return "Name"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindQWord:
		return "QWord"
	case KindByte:
		return "Byte"
	case KindStruct:
		return "Struct"
	case KindArray:
		return "Array"
	default:
		return "?"
	}
}

// ByteValue is an enumerated byte: the enum type label and, when set, the
// label of the selected member (e.g. "OnlinePlatform_Steam").
type ByteValue struct {
	Kind     string
	Value    string
	HasValue bool
}

// StructValue is a named nested property list.
type StructValue struct {
	Name   string
	Fields Properties
}

// Value is one tagged header property value. Only the field matching Kind is
// meaningful.
type Value struct {
	Kind   Kind
	Str    string // KindStr and KindName
	Int    int32
	Float  float64
	Bool   bool
	QWord  uint64
	Byte   ByteValue
	Struct StructValue
	Array  []Properties
}

// Property is one (name, value) pair of a property list.
type Property struct {
	Name  string
	Value Value
}

// Properties is an ordered property list. Keys may repeat; the first
// occurrence wins on lookup.
type Properties []Property

// ---- Network frames ----

// AttributeKind tags the variant carried by an Attribute.
type AttributeKind uint8

const (
	AttrOther AttributeKind = iota
	AttrString
	AttrTeamLoadout
)

// Loadout is one side of a team loadout attribute. Fields are product ids.
type Loadout struct {
	Version       uint8
	Body          uint32
	Decal         uint32
	Wheels        uint32
	RocketTrail   uint32
	Antenna       uint32
	Topper        uint32
	EngineAudio   uint32
	Trail         uint32
	GoalExplosion uint32
	Banner        uint32
}

// TeamLoadout carries the loadout a player uses on each side.
type TeamLoadout struct {
	Blue   Loadout
	Orange Loadout
}

// Attribute is a replicated attribute update. Variants other than string and
// team loadout keep only their variant name.
type Attribute struct {
	Kind        AttributeKind
	Variant     string
	String      string
	TeamLoadout TeamLoadout
}

// UpdatedActor pairs an actor handle with one attribute update.
type UpdatedActor struct {
	ActorID   int32
	StreamID  int32
	ObjectID  int32
	Attribute Attribute
}

// Frame is one network tick.
type Frame struct {
	Time          float64
	Delta         float64
	UpdatedActors []UpdatedActor
}

// NetworkFrames is the decoded network stream.
type NetworkFrames struct {
	Frames []Frame
}

// Replay is a fully decoded replay. NetworkFrames is nil when the decoder was
// not asked for (or could not produce) network data.
type Replay struct {
	HeaderSize    uint32
	HeaderCRC     uint32
	MajorVersion  int32
	MinorVersion  int32
	NetVersion    int32
	GameType      string
	Properties    Properties
	NetworkFrames *NetworkFrames
}

// Frames returns the frame stream, or nil when none was decoded.
func (r *Replay) Frames() []Frame {
	if r == nil || r.NetworkFrames == nil {
		return nil
	}
	return r.NetworkFrames.Frames
}
