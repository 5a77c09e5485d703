package asyncload

// Double is the only number type the host scripting language knows about.
// Every value crossing the extension boundary as a number is a Double.
type Double = float64

// NoneDouble returns the neutral number handed back to the host when a
// function has nothing meaningful to return.
func NoneDouble() Double {
	return 0
}
