// Package types holds the small value types shared across the engine,
// terminal, and repository-model packages: keyboard input and the
// working-tree status vocabulary.
package types

// Mods is a bitmask of modifier keys held alongside a Key.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
)

// Key enumerates the keys the decoder can produce. Printable characters
// (letters, digits, space) carry their rune in Input.Rune rather than
// having one Key constant per character.
type Key int

const (
	KeyUnknown Key = iota
	KeyRune
	KeyTab
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Input is one decoded keypress. Equality is structural, so Input values
// can be used directly as map keys (see internal/inputmap).
type Input struct {
	Key  Key
	Rune rune
	Mods Mods
}

// Letter builds the Input for an uppercase letter key, matching how the
// base-state bindings in internal/ui are registered ("S", "U", "P", ...).
func Letter(r rune) Input {
	return Input{Key: KeyRune, Rune: r}
}
