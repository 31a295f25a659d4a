package replay

import (
	"fmt"
	"strconv"
	"strings"
)

// Lookup resolves a dotted path against the replay and renders the result as
// a string. Supported paths:
//
//	properties.<Key>       Str, Name, Int, Float or Bool header properties
//	header.version         "major.minor"
//	header.length          header size in bytes
//	header.crc             header checksum
//	network_frames.count   number of frames (only when frames were decoded)
func (r *Replay) Lookup(path string) (string, bool) {
	section, key, ok := strings.Cut(path, ".")
	if !ok || r == nil {
		return "", false
	}

	switch section {
	case "properties":
		v, ok := r.Properties.Find(key)
		if !ok {
			return "", false
		}
		return renderScalar(v)
	case "header":
		switch key {
		case "version":
			return fmt.Sprintf("%d.%d", r.MajorVersion, r.MinorVersion), true
		case "length":
			return strconv.FormatUint(uint64(r.HeaderSize), 10), true
		case "crc":
			return strconv.FormatUint(uint64(r.HeaderCRC), 10), true
		}
	case "network_frames":
		if key == "count" && r.NetworkFrames != nil {
			return strconv.Itoa(len(r.NetworkFrames.Frames)), true
		}
	}
	return "", false
}

func renderScalar(v Value) (string, bool) {
	switch v.Kind {
	case KindStr, KindName:
		return v.Str, true
	case KindInt:
		return strconv.Itoa(int(v.Int)), true
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64), true
	case KindBool:
		return strconv.FormatBool(v.Bool), true
	}
	return "", false
}
