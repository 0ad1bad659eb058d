// Package access is the single authoritative implementation of the
// feature access predicate. Both enforcement points consume it: the HTTP
// layer gates routes with it and the client SDK gates navigation with it.
// It is pure: no storage, no transport, no errors. Verdicts are plain
// booleans, fail-closed on any ambiguous input.
package access

// Entry is one registry node as carried by a snapshot. Subfeatures nest one
// level deep; the wire shape of GET /api/features maps onto it directly.
type Entry struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Path         string   `json:"path"`
	Enabled      bool     `json:"enabled"`
	AllowedRoles []string `json:"allowedRoles"`
	Subfeatures  []Entry  `json:"subfeatures,omitempty"`
}

type resolvedEntry struct {
	entry Entry
	// effectiveEnabled folds the parent's enabled flag into a subfeature:
	// a disabled feature renders its whole subtree inaccessible. Roles are
	// not folded; each entry's allow-list is self-describing.
	effectiveEnabled bool
}

// Snapshot is a point-in-time read of the registry with a flat code index,
// so lookups are O(1) instead of a tree walk per call. A Snapshot is
// immutable once built.
type Snapshot struct {
	entries []Entry
	index   map[string]resolvedEntry
}

// NewSnapshot indexes the given registry entries. Codes are unique by
// invariant; should duplicates survive into a snapshot anyway, the first
// occurrence wins (features in order, then each feature's subfeatures).
func NewSnapshot(entries []Entry) *Snapshot {
	s := &Snapshot{
		entries: entries,
		index:   make(map[string]resolvedEntry),
	}
	for _, f := range entries {
		s.add(f, f.Enabled)
		for _, sf := range f.Subfeatures {
			s.add(sf, f.Enabled && sf.Enabled)
		}
	}
	return s
}

// Empty returns a deny-all snapshot.
func Empty() *Snapshot {
	return NewSnapshot(nil)
}

func (s *Snapshot) add(e Entry, effectiveEnabled bool) {
	if _, exists := s.index[e.Code]; exists {
		return
	}
	s.index[e.Code] = resolvedEntry{entry: e, effectiveEnabled: effectiveEnabled}
}

// CanAccess decides ACCESSIBLE / NOT-ACCESSIBLE for one entry and one
// caller role. Unknown code, disabled entry (or disabled parent), empty
// role and role outside the allow-list all deny.
func (s *Snapshot) CanAccess(code, role string) bool {
	if s == nil || role == "" {
		return false
	}
	resolved, ok := s.index[code]
	if !ok || !resolved.effectiveEnabled {
		return false
	}
	for _, allowed := range resolved.entry.AllowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Lookup returns the raw entry for a code, without any access verdict.
func (s *Snapshot) Lookup(code string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	resolved, ok := s.index[code]
	return resolved.entry, ok
}

// Features returns the top-level entries in registry order.
func (s *Snapshot) Features() []Entry {
	if s == nil {
		return nil
	}
	return s.entries
}

// Len reports the number of indexed entries, subfeatures included.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.index)
}
