package dpcd

import (
	"fmt"
	"strconv"
	"strings"
)

// valueIndent is the width of the ": xx, " part between the header and
// the first field of an expanded line. Continuation lines are padded by
// the header width plus this indent so that all fields line up.
const valueIndent = 6

// FormatError reports a dump line that does not match the expected
// "address: value value ..." shape. The decoder stays usable for
// subsequent lines.
type FormatError struct {
	Line   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed dump line %q: %s: %s", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed dump line %q: %s", e.Line, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ParseLine splits a dump line of the form "0000: 11 0a ..." into the
// base register address and the register byte values.
// Blank lines are expected to be filtered out by the caller.
func ParseLine(line string) (uint32, []byte, error) {
	addressPart, valuePart, found := strings.Cut(line, ":")
	if !found {
		return 0, nil, &FormatError{Line: line, Reason: "missing ':' after the base address"}
	}

	addressTokens := strings.Fields(addressPart)
	if len(addressTokens) != 1 {
		return 0, nil, &FormatError{Line: line, Reason: "expected a single base address before ':'"}
	}
	base, err := strconv.ParseUint(addressTokens[0], 16, 32)
	if err != nil {
		return 0, nil, &FormatError{Line: line, Reason: "invalid base address", Err: err}
	}

	valueTokens := strings.Fields(valuePart)
	if len(valueTokens) == 0 {
		return 0, nil, &FormatError{Line: line, Reason: "no register values after ':'"}
	}

	values := make([]byte, 0, len(valueTokens))
	for _, token := range valueTokens {
		value, err := strconv.ParseUint(token, 16, 8)
		if err != nil {
			return 0, nil, &FormatError{Line: line, Reason: fmt.Sprintf("invalid register value %q", token), Err: err}
		}
		values = append(values, byte(value))
	}
	return uint32(base), values, nil
}

// Decoder renders register bytes of a dump as aligned text lines.
// It holds no per-line state and can decode any number of lines.
type Decoder struct {
	catalog      *Catalog
	expandFields bool
}

// NewDecoder creates a decoder that resolves register addresses against
// the catalog. With expandFields enabled, registers with known bitfields
// are expanded into one "name: value" entry per field.
func NewDecoder(catalog *Catalog, expandFields bool) *Decoder {
	return &Decoder{
		catalog:      catalog,
		expandFields: expandFields,
	}
}

// DecodeLine decodes the register bytes of one dump line and returns one
// rendered text block per byte. The byte at index i describes the
// register at address base+i. Long lines can run past the end of the
// 16 bit DPCD address space, the address simply widens in that case.
func (d *Decoder) DecodeLine(base uint32, values []byte) []string {
	blocks := make([]string, 0, len(values))
	for i, value := range values {
		blocks = append(blocks, d.decodeByte(base+uint32(i), value))
	}
	return blocks
}

// decodeByte renders a single register byte. Addresses missing from the
// catalog render through the same path with a blank name.
func (d *Decoder) decodeByte(address uint32, value byte) string {
	register, known := d.catalog.Lookup(address)
	header := fmt.Sprintf("%*s %04x", d.catalog.MaxNameWidth(), register.Name, address)

	if !known || !d.expandFields || len(register.Fields) == 0 {
		return fmt.Sprintf("%s: %02x", header, value)
	}

	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%s: %02x", header, value)

	indent := strings.Repeat(" ", len(header)+valueIndent)
	for i, field := range register.Fields {
		if i == 0 {
			sb.WriteString(", ")
		} else {
			sb.WriteByte('\n')
			sb.WriteString(indent)
		}
		fmt.Fprintf(&sb, "%s: %d", field.Name, field.Extract(value))
	}
	return sb.String()
}
