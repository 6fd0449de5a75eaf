package term

import (
	"bufio"
	"io"

	"github.com/gitwatch/gitwatch/internal/types"
)

// Decoder is the InputDecoder of spec.md §1/§4: a byte stream turned into
// types.Input values. Letters keep whatever case the terminal actually
// sent (terminals signal Shift+letter by sending the uppercase byte, not a
// separate modifier code), which is what lets InputModalState preserve
// typed capitalization while BaseState's bindings match literal uppercase
// keys like "S" and "C".
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder wraps r (normally the raw-mode stdin) for byte-at-a-time
// decoding.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// ReadInput blocks until one key has been decoded.
func (d *Decoder) ReadInput() (types.Input, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return types.Input{}, err
	}
	switch {
	case b == 0x1b:
		return d.decodeEscape()
	case b == '\r' || b == '\n':
		return types.Input{Key: types.KeyEnter}, nil
	case b == '\t':
		return types.Input{Key: types.KeyTab}, nil
	case b == 0x7f || b == 0x08:
		return types.Input{Key: types.KeyBackspace}, nil
	case b == ' ':
		return types.Input{Key: types.KeyRune, Rune: ' '}, nil
	case b >= 1 && b <= 26:
		// Ctrl+<letter>: the control code is the letter's ordinal position.
		return types.Input{Key: types.KeyRune, Rune: rune('a' + b - 1), Mods: types.ModCtrl}, nil
	case (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9'):
		return types.Input{Key: types.KeyRune, Rune: rune(b)}, nil
	default:
		return types.Input{Key: types.KeyUnknown}, nil
	}
}

// decodeEscape handles a lone Escape key versus a "\x1b[" CSI arrow
// sequence: an Escape with no further byte already buffered behind it is a
// lone Escape. A read failure partway through a sequence degrades to
// KeyUnknown rather than propagating an error — a torn escape sequence is
// not a fatal condition.
func (d *Decoder) decodeEscape() (types.Input, error) {
	if d.r.Buffered() == 0 {
		return types.Input{Key: types.KeyEscape}, nil
	}
	b1, err := d.r.ReadByte()
	if err != nil {
		return types.Input{Key: types.KeyEscape}, nil
	}
	if b1 != '[' {
		return types.Input{Key: types.KeyEscape}, nil
	}
	b2, err := d.r.ReadByte()
	if err != nil {
		return types.Input{Key: types.KeyUnknown}, nil
	}
	switch b2 {
	case 'A':
		return types.Input{Key: types.KeyUp}, nil
	case 'B':
		return types.Input{Key: types.KeyDown}, nil
	case 'C':
		return types.Input{Key: types.KeyRight}, nil
	case 'D':
		return types.Input{Key: types.KeyLeft}, nil
	default:
		return types.Input{Key: types.KeyUnknown}, nil
	}
}
