// File: codeOverFlow/parg/type.go
package parg

// Kind-specific accessors wrapping Get. Each one is strict: the argument
// must have been declared with the matching kind, otherwise the call
// fails with ErrTypeMismatch.

// Uint8 retrieves the value of a KindUint8 argument.
func (c *CLI) Uint8(name string) (uint8, error) {
	return Get[uint8](c, name)
}

// Uint16 retrieves the value of a KindUint16 argument.
func (c *CLI) Uint16(name string) (uint16, error) {
	return Get[uint16](c, name)
}

// Uint32 retrieves the value of a KindUint32 argument.
func (c *CLI) Uint32(name string) (uint32, error) {
	return Get[uint32](c, name)
}

// Uint64 retrieves the value of a KindUint64 argument.
func (c *CLI) Uint64(name string) (uint64, error) {
	return Get[uint64](c, name)
}

// Uint retrieves the value of a KindUint argument.
func (c *CLI) Uint(name string) (uint, error) {
	return Get[uint](c, name)
}

// Int8 retrieves the value of a KindInt8 argument.
func (c *CLI) Int8(name string) (int8, error) {
	return Get[int8](c, name)
}

// Int16 retrieves the value of a KindInt16 argument.
func (c *CLI) Int16(name string) (int16, error) {
	return Get[int16](c, name)
}

// Int32 retrieves the value of a KindInt32 argument.
func (c *CLI) Int32(name string) (int32, error) {
	return Get[int32](c, name)
}

// Int64 retrieves the value of a KindInt64 argument.
func (c *CLI) Int64(name string) (int64, error) {
	return Get[int64](c, name)
}

// Int retrieves the value of a KindInt argument.
func (c *CLI) Int(name string) (int, error) {
	return Get[int](c, name)
}

// Float32 retrieves the value of a KindFloat32 argument.
func (c *CLI) Float32(name string) (float32, error) {
	return Get[float32](c, name)
}

// Float64 retrieves the value of a KindFloat64 argument.
func (c *CLI) Float64(name string) (float64, error) {
	return Get[float64](c, name)
}

// Bool retrieves the value of a KindBool argument. For presence-only
// flags use Exists instead.
func (c *CLI) Bool(name string) (bool, error) {
	return Get[bool](c, name)
}

// Rune retrieves the value of a KindRune argument.
func (c *CLI) Rune(name string) (rune, error) {
	return Get[rune](c, name)
}

// String retrieves the value of a KindString argument.
func (c *CLI) String(name string) (string, error) {
	return Get[string](c, name)
}
