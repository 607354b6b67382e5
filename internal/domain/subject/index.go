package subject

// Index maps a subject id to its catalog entry.
type Index map[int]Subject

// BuildIndex builds the lookup index used for classification joins.
// Later duplicates overwrite earlier ones; subject ids are unique at the
// source, so this is a documented assumption rather than an enforced rule.
func BuildIndex(subjects []Subject) Index {
	index := make(Index, len(subjects))
	for _, s := range subjects {
		index[s.ID] = s
	}
	return index
}

// Lookup returns the subject for an id and whether it exists.
func (i Index) Lookup(id int) (Subject, bool) {
	s, ok := i[id]
	return s, ok
}
