package dpcd

import "fmt"

// Catalog maps DPCD register addresses to their descriptors.
// It is built once at startup and read-only afterwards, so it can be
// shared freely between goroutines.
type Catalog struct {
	registers    map[uint32]Register
	maxNameWidth int
}

// NewCatalog merges the given register tables into one catalog.
// An address appearing in more than one table is a defect in the static
// tables and returns an error, it is not a runtime input condition.
func NewCatalog(tables ...map[uint32]Register) (*Catalog, error) {
	c := &Catalog{
		registers: map[uint32]Register{},
	}

	for _, table := range tables {
		for address, register := range table {
			if existing, ok := c.registers[address]; ok {
				return nil, fmt.Errorf("duplicate register address 0x%04x: %s and %s",
					address, existing.Name, register.Name)
			}
			c.registers[address] = register

			if len(register.Name) > c.maxNameWidth {
				c.maxNameWidth = len(register.Name)
			}
		}
	}
	return c, nil
}

// Lookup returns the register descriptor for the address.
// Addresses not covered by the catalog return false, they are not an error.
func (c *Catalog) Lookup(address uint32) (Register, bool) {
	register, ok := c.registers[address]
	return register, ok
}

// MaxNameWidth returns the length of the longest register name in the
// catalog. It is used to right align the name column of every decoded
// line, regardless of which registers appear in a dump.
func (c *Catalog) MaxNameWidth() int {
	return c.maxNameWidth
}
