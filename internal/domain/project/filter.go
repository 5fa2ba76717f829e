package project

// Filter holds optional filter criteria for listing board projects.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status Status
}

// Match reports whether p satisfies every set filter dimension.
func (f Filter) Match(p Project) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return true
}
