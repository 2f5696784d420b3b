// Package dpcd decodes DisplayPort Configuration Data register dumps.
package dpcd

// Field describes a named bitfield inside a register byte.
type Field struct {
	Name  string
	Mask  byte // value mask, applied after shifting
	Shift uint // right shift applied before masking
}

// Extract returns the field value contained in the register byte.
func (f Field) Extract(value byte) byte {
	return (value >> f.Shift) & f.Mask
}

// Register describes a single byte-wide DPCD register.
// Fields are listed in display order, most significant bits first.
// Registers that are only shown as a raw value have no fields.
type Register struct {
	Name   string
	Fields []Field
}
