package inventory

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// ClassIndex maps natural class names to the phonemes which are members of the
// class. Iteration is in alphabetical order of class names; members of a class
// are kept in alphabetic (rank) order of phonemes.
//
// A class index is a snapshot. It is not updated on subsequent mutations of
// the inventory it has been created from.
type ClassIndex struct {
	classes *treemap.Map // class name -> []string
	version uint64
}

// Index creates a class index for the current state of inv. Memberships in
// classes not defined in inv are included, but traced.
func (inv *Inventory) Index() *ClassIndex {
	ix := &ClassIndex{
		classes: treemap.NewWithStringComparator(),
		version: inv.version,
	}
	for _, c := range inv.classes {
		ix.classes.Put(c.Name, []string{})
	}
	for _, p := range inv.Phonemes() {
		for _, c := range p.Classes {
			members, found := ix.classes.Get(c)
			if !found {
				tracer().Errorf("phoneme %q is member of undefined class %q", p.Name, c)
				members = []string{}
			}
			ix.classes.Put(c, append(members.([]string), p.Name))
		}
	}
	return ix
}

// Version is the inventory version the index has been created from.
func (ix *ClassIndex) Version() uint64 {
	return ix.version
}

// Members returns the member phonemes of a class, or nil for unknown classes.
func (ix *ClassIndex) Members(class string) []string {
	if m, found := ix.classes.Get(class); found {
		return m.([]string)
	}
	return nil
}

// Has is true if the class is known to the index.
func (ix *ClassIndex) Has(class string) bool {
	_, found := ix.classes.Get(class)
	return found
}

// Size returns the number of classes in the index.
func (ix *ClassIndex) Size() int {
	return ix.classes.Size()
}

// Each calls f for every class in alphabetical order, with the class' members.
func (ix *ClassIndex) Each(f func(class string, members []string)) {
	it := ix.classes.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().([]string))
	}
}
