package input

import (
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Key
	}{
		{"csi arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Key{KeyUp, KeyDown, KeyRight, KeyLeft}},
		{"ss3 arrows", "\x1bOA\x1bOD", []Key{KeyUp, KeyLeft}},
		{"wasd", "wasd", []Key{KeyUp, KeyLeft, KeyDown, KeyRight}},
		{"hjkl", "hjkl", []Key{KeyLeft, KeyDown, KeyUp, KeyRight}},
		{"upper case", "WR", []Key{KeyUp, KeyReset}},
		{"quit", "q\x03", []Key{KeyQuit, KeyQuit}},
		{"reset", "r", []Key{KeyReset}},
		{"other", "x ", []Key{KeyOther, KeyOther}},
		{"lone escape", "\x1b", []Key{KeyOther}},
		{"unknown csi", "\x1b[Z", []Key{KeyOther}},
		{"home", "\x1b[H", []Key{KeyOther}},
		{"ctrl up", "\x1b[1;5A", []Key{KeyOther}},
		{"shift left", "\x1b[1;2D", []Key{KeyOther}},
		{"ss3 function key", "\x1bOP", []Key{KeyOther}},
		{"page down", "\x1b[6~", []Key{KeyOther}},
		{"truncated csi", "\x1b[1;", []Key{KeyOther}},
		{"modified arrow then quit", "\x1b[1;5Cq", []Key{KeyOther, KeyQuit}},
		{"broken csi then arrow", "\x1b[\x1b[A", []Key{KeyOther, KeyUp}},
		{"mixed", "\x1b[Cq", []Key{KeyRight, KeyQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(nil, []byte(tt.in))
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Parse(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIsDirection(t *testing.T) {
	for _, k := range []Key{KeyLeft, KeyUp, KeyRight, KeyDown} {
		if !k.IsDirection() {
			t.Errorf("%v should be a direction", k)
		}
	}
	for _, k := range []Key{KeyNone, KeyReset, KeyQuit, KeyOther} {
		if k.IsDirection() {
			t.Errorf("%v should not be a direction", k)
		}
	}
}

func TestStreamClosesOnEOF(t *testing.T) {
	s := StartStream(strings.NewReader("\x1b[Ar"))

	var got []Key
	timeout := time.After(time.Second)
	for {
		select {
		case k, ok := <-s.Keys():
			if !ok {
				if len(got) != 2 || got[0] != KeyUp || got[1] != KeyReset {
					t.Fatalf("keys = %v, want [up reset]", got)
				}
				return
			}
			got = append(got, k)
		case <-timeout:
			t.Fatal("stream did not close after EOF")
		}
	}
}
