package dpcd

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFieldExtract(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value byte
		want  byte
	}{
		{
			name:  "high nibble",
			field: Field{Name: "major", Mask: 0xf, Shift: 4},
			value: 0x11,
			want:  0x1,
		},
		{
			name:  "low nibble",
			field: Field{Name: "minor", Mask: 0xf, Shift: 0},
			value: 0x12,
			want:  0x2,
		},
		{
			name:  "single top bit set",
			field: Field{Name: "enhanced frame cap", Mask: 0x1, Shift: 7},
			value: 0x81,
			want:  1,
		},
		{
			name:  "single top bit clear",
			field: Field{Name: "TPS3 supported", Mask: 0x1, Shift: 6},
			value: 0x81,
			want:  0,
		},
		{
			name:  "multi bit field",
			field: Field{Name: "max lanes", Mask: 0x1f, Shift: 0},
			value: 0x84,
			want:  4,
		},
		{
			name:  "full byte",
			field: Field{Name: "buffer_size", Mask: 0xff, Shift: 0},
			value: 0xa5,
			want:  0xa5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.Extract(tt.value))
		})
	}
}

// Extracted values can never exceed the field mask, for any register value.
func TestFieldExtractRange(t *testing.T) {
	catalog, err := NewCatalog(ReceiverCapability, LinkConfiguration, LinkSinkStatus)
	assert.NoError(t, err)

	for address := uint32(0); address <= 0x2ff; address++ {
		register, ok := catalog.Lookup(address)
		if !ok {
			continue
		}
		for _, field := range register.Fields {
			for value := 0; value <= 0xff; value++ {
				extracted := field.Extract(byte(value))
				assert.True(t, extracted <= field.Mask,
					fmt.Sprintf("field %s of %s: value %#02x extracted above mask %#02x",
						field.Name, register.Name, value, field.Mask))
			}
		}
	}
}
