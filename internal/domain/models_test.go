package domain

import (
	"encoding/json"
	"testing"
)

func TestSongID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SongID
		wantErr  bool
	}{
		{name: "Number", input: `42`, expected: "42"},
		{name: "String", input: `"42"`, expected: "42"},
		{name: "String With Spaces", input: `" abc "`, expected: "abc"},
		{name: "Null", input: `null`, expected: ""},
		{name: "Large Number", input: `12345678901234567890`, expected: "12345678901234567890"},
		{name: "Object", input: `{}`, wantErr: true},
		{name: "Bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id SongID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s, got id %q", tt.input, id)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, id)
			}
		})
	}
}

func TestParseAlignment(t *testing.T) {
	valid := []string{"bottom", "top", "center", "center-bottom", "center-top", "top-right", "bottom-right", " Top "}
	for _, s := range valid {
		if _, err := ParseAlignment(s); err != nil {
			t.Errorf("ParseAlignment(%q) returned error: %v", s, err)
		}
	}

	for _, s := range []string{"", "left", "bottom-left", "middle"} {
		if _, err := ParseAlignment(s); err == nil {
			t.Errorf("ParseAlignment(%q) expected error", s)
		}
	}
}

func TestAlignment_Placement(t *testing.T) {
	p := Alignment("top-right").Placement()
	if p.Horizontal != AnchorEnd || p.Vertical != AnchorStart || p.Justify != JustifyRight {
		t.Errorf("unexpected placement for top-right: %+v", p)
	}

	p = Alignment("center-bottom").Placement()
	if p.Horizontal != AnchorCenter || p.Vertical != AnchorEnd || p.Justify != JustifyCenter {
		t.Errorf("unexpected placement for center-bottom: %+v", p)
	}

	p = Alignment("bogus").Placement()
	if p.Horizontal != AnchorStart || p.Vertical != AnchorStart {
		t.Errorf("unknown alignment should resolve to top-left, got %+v", p)
	}
}

func TestControlAction_Mode(t *testing.T) {
	tests := map[ControlAction]string{
		ActionPlay: "start",
		ActionStop: "stop",
		ActionSkip: "skip",
	}
	for action, want := range tests {
		got, err := action.Mode()
		if err != nil {
			t.Fatalf("Mode(%s) returned error: %v", action, err)
		}
		if got != want {
			t.Errorf("Mode(%s) = %q, want %q", action, got, want)
		}
	}

	if _, err := ControlAction("rewind").Mode(); err == nil {
		t.Error("expected error for unknown action")
	}
}
