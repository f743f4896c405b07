package libdiff

// Reverse gives the changes which undo changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, Op: c.Op, From: c.To, To: c.From}
		switch c.Op {
		case Added:
			r.Op = Removed
		case Removed:
			r.Op = Added
		}
		res[i] = r
	}
	return res
}
