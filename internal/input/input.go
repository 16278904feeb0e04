// Package input decodes raw terminal bytes into game keys.
package input

import "io"

// Key is a decoded key press.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyReset
	KeyQuit
	KeyOther // Any other byte; still counts as activity
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	case KeyReset:
		return "reset"
	case KeyQuit:
		return "quit"
	case KeyOther:
		return "other"
	default:
		return "none"
	}
}

// IsDirection reports whether k is one of the four arrows.
func (k Key) IsDirection() bool {
	return k >= KeyLeft && k <= KeyDown
}

// Parse appends the keys encoded in buf to dst.
//
// Arrow keys arrive as CSI (ESC [ A) or, in application cursor mode, SS3
// (ESC O A) sequences. Any other escape sequence (Home, modified arrows,
// function keys) is consumed whole and reported as KeyOther. WASD and
// vim-style hjkl steer as well.
func Parse(dst []Key, buf []byte) []Key {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+1 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			k, n := escapeKey(buf[i:])
			dst = append(dst, k)
			i += n - 1
			continue
		}

		dst = append(dst, byteKey(b))
	}
	return dst
}

// escapeKey decodes the CSI/SS3 sequence at the start of seq and returns
// the key and the number of bytes consumed. A sequence cut off by the end
// of the buffer is consumed to the end.
func escapeKey(seq []byte) (Key, int) {
	j := 2
	for j < len(seq) && seq[j] >= 0x20 && seq[j] <= 0x3f { // Parameter and intermediate bytes
		j++
	}
	if j >= len(seq) || seq[j] < 0x40 || seq[j] > 0x7e {
		return KeyOther, j
	}
	if j == 2 {
		if k, ok := arrowKey(seq[j]); ok {
			return k, j + 1
		}
	}
	return KeyOther, j + 1
}

func byteKey(b byte) Key {
	switch b {
	case 'q', 'Q', 0x03: // Ctrl-C arrives as a byte in raw mode
		return KeyQuit
	case 'r', 'R':
		return KeyReset
	case 'a', 'A', 'h', 'H':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case 'w', 'W', 'k', 'K':
		return KeyUp
	case 's', 'S', 'j', 'J':
		return KeyDown
	default:
		return KeyOther
	}
}

// Stream delivers decoded keys from a reader via a channel.
type Stream struct {
	ch chan Key
}

// StartStream spawns a goroutine that reads from r and sends keys to the
// stream. The channel is closed when r returns an error (including EOF).
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch: make(chan Key, 128),
	}
	go func() {
		defer close(s.ch)
		buf := make([]byte, 256)
		var keys []Key
		for {
			n, err := r.Read(buf)
			if n > 0 {
				keys = Parse(keys[:0], buf[:n])
				for _, k := range keys {
					s.ch <- k
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return s
}

// Keys returns the channel of decoded keys.
func (s *Stream) Keys() <-chan Key {
	return s.ch
}
