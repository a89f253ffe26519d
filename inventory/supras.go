package inventory

// SupraSets is the partitioning of suprasegmentals by the type of their
// spelling rule. Each partition holds both phoneme- and syllable-domain
// entries in order of creation.
type SupraSets struct {
	Diacritic []*Suprasegmental
	Before    []*Suprasegmental
	After     []*Suprasegmental
	Doubled   []*Suprasegmental
}

// SupraSets partitions the suprasegmentals of inv by spelling rule type.
func (inv *Inventory) SupraSets() SupraSets {
	var sets SupraSets
	for _, s := range inv.supras {
		switch t := s.Spelling.Type; {
		case t.IsDiacritic():
			sets.Diacritic = append(sets.Diacritic, s)
		case t == Before:
			sets.Before = append(sets.Before, s)
		case t == After:
			sets.After = append(sets.After, s)
		case t == Doubled:
			sets.Doubled = append(sets.Doubled, s)
		default:
			tracer().Errorf("suprasegmental %q has unknown spelling rule type %d", s.Name, t)
		}
	}
	return sets
}

// InDomain selects the entries of list belonging to domain d.
func InDomain(list []*Suprasegmental, d SupraDomain) []*Suprasegmental {
	var sel []*Suprasegmental
	for _, s := range list {
		if s.Domain == d {
			sel = append(sel, s)
		}
	}
	return sel
}

// FindByText returns the first entry of list in domain d whose spelling text
// equals text, or nil.
func FindByText(list []*Suprasegmental, d SupraDomain, text string) *Suprasegmental {
	for _, s := range list {
		if s.Domain == d && s.Spelling.Text == text {
			return s
		}
	}
	return nil
}
