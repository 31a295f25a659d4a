package replay

import "testing"

func TestLookup(t *testing.T) {
	r, err := Decode([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"properties.TeamSize", "2", true},
		{"properties.TotalSecondsPlayed", "310.5", true},
		{"properties.MapName", "Stadium_P", true},
		{"properties.PlayerStats", "", false},
		{"properties.Missing", "", false},
		{"header.version", "868.32", true},
		{"header.length", "4768", true},
		{"header.crc", "337", true},
		{"header.nope", "", false},
		{"network_frames.count", "2", true},
		{"garbage", "", false},
	}
	for _, tt := range tests {
		got, ok := r.Lookup(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLookupFrameCountWithoutFrames(t *testing.T) {
	r := &Replay{Properties: Properties{Prop("bOvertime", Bool(true))}}
	if _, ok := r.Lookup("network_frames.count"); ok {
		t.Error("expected no frame count when the stream is absent")
	}
	if got, ok := r.Lookup("properties.bOvertime"); !ok || got != "true" {
		t.Errorf("bool lookup: got (%q, %v)", got, ok)
	}
}
