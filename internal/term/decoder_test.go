package term

import (
	"strings"
	"testing"

	"github.com/gitwatch/gitwatch/internal/types"
)

func TestReadInputPlainKeys(t *testing.T) {
	cases := []struct {
		in   string
		want types.Input
	}{
		{"S", types.Input{Key: types.KeyRune, Rune: 'S'}},
		{"s", types.Input{Key: types.KeyRune, Rune: 's'}},
		{"5", types.Input{Key: types.KeyRune, Rune: '5'}},
		{" ", types.Input{Key: types.KeyRune, Rune: ' '}},
		{"\r", types.Input{Key: types.KeyEnter}},
		{"\n", types.Input{Key: types.KeyEnter}},
		{"\t", types.Input{Key: types.KeyTab}},
		{"\x7f", types.Input{Key: types.KeyBackspace}},
	}
	for _, c := range cases {
		d := NewDecoder(strings.NewReader(c.in))
		got, err := d.ReadInput()
		if err != nil {
			t.Fatalf("ReadInput(%q) error = %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ReadInput(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestReadInputCtrlLetter(t *testing.T) {
	d := NewDecoder(strings.NewReader("\x03")) // Ctrl+C
	got, err := d.ReadInput()
	if err != nil {
		t.Fatalf("ReadInput error = %v", err)
	}
	want := types.Input{Key: types.KeyRune, Rune: 'c', Mods: types.ModCtrl}
	if got != want {
		t.Fatalf("ReadInput(Ctrl+C) = %+v, want %+v", got, want)
	}
}

func TestReadInputArrowKeys(t *testing.T) {
	cases := map[string]types.Key{
		"\x1b[A": types.KeyUp,
		"\x1b[B": types.KeyDown,
		"\x1b[C": types.KeyRight,
		"\x1b[D": types.KeyLeft,
	}
	for seq, want := range cases {
		d := NewDecoder(strings.NewReader(seq))
		got, err := d.ReadInput()
		if err != nil {
			t.Fatalf("ReadInput(%q) error = %v", seq, err)
		}
		if got.Key != want {
			t.Errorf("ReadInput(%q) = %v, want %v", seq, got.Key, want)
		}
	}
}

func TestReadInputLoneEscape(t *testing.T) {
	d := NewDecoder(strings.NewReader("\x1b"))
	got, err := d.ReadInput()
	if err != nil {
		t.Fatalf("ReadInput error = %v", err)
	}
	if got.Key != types.KeyEscape {
		t.Fatalf("ReadInput(lone ESC) = %v, want KeyEscape", got.Key)
	}
}

func TestReadInputUnknownCSIFinalByte(t *testing.T) {
	d := NewDecoder(strings.NewReader("\x1b[Z"))
	got, err := d.ReadInput()
	if err != nil {
		t.Fatalf("ReadInput error = %v", err)
	}
	if got.Key != types.KeyUnknown {
		t.Fatalf("ReadInput(\\x1b[Z) = %v, want KeyUnknown", got.Key)
	}
}
