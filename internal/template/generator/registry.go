package generator

// Registry records which raw references have been embedded in the current run.
// Identity is the reference text as written in source, not the resolved path,
// so two spellings of the same file are embedded twice.
type Registry struct {
	seen  map[string]struct{}
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// MarkAndCheck records ref and reports whether this is its first occurrence.
func (r *Registry) MarkAndCheck(ref string) bool {
	if _, ok := r.seen[ref]; ok {
		return false
	}
	r.seen[ref] = struct{}{}
	r.order = append(r.order, ref)
	return true
}

// Len returns the number of distinct references recorded.
func (r *Registry) Len() int {
	return len(r.order)
}

// References returns recorded references in first-seen order.
func (r *Registry) References() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
