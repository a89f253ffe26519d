package grammar

import (
	"github.com/npillmayer/syllabo/inventory"
)

// Cache holds the compiled rules for an inventory. Rules are recompiled
// whenever the inventory or its version differs from the one they have been
// compiled for.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	rules   []*Rule
	inv     *inventory.Inventory
	version uint64
	valid   bool
}

// Rules returns the rules for the current state of inv. The second return
// value is true if the rules have been (re-)compiled during this call.
func (c *Cache) Rules(inv *inventory.Inventory) ([]*Rule, bool) {
	if c.valid && c.inv == inv && c.version == inv.Version() {
		return c.rules, false
	}
	tracer().Debugf("grammar cache stale, compiling for version %d", inv.Version())
	c.rules = Compile(inv)
	c.inv = inv
	c.version = inv.Version()
	c.valid = true
	return c.rules, true
}

// Invalidate forces recompilation on the next call to Rules.
func (c *Cache) Invalidate() {
	c.valid = false
	c.rules = nil
}

// Version returns the inventory version the cached rules have been compiled
// for, and false if the cache is empty.
func (c *Cache) Version() (uint64, bool) {
	return c.version, c.valid
}
