package media

// Identity is the pair of IDs assigned to an entity at construction.
type Identity struct {
	Global int64
	Local  int64
}

// IdentitySource hands out identities to constructors.
type IdentitySource interface {
	Issue(kind Kind) Identity
}

// Counters is the last value issued by each counter.
type Counters struct {
	Global     int64 `json:"global_id"`
	Book       int64 `json:"book_id"`
	Movie      int64 `json:"movie_id"`
	Anime      int64 `json:"anime_id"`
	Television int64 `json:"television_id"`
}

// Local returns the counter for kind, or 0 for unrecognized kinds.
func (c Counters) Local(kind Kind) int64 {
	switch kind {
	case KindBook:
		return c.Book
	case KindMovie:
		return c.Movie
	case KindAnime:
		return c.Anime
	case KindTelevision:
		return c.Television
	}
	return 0
}

func (c *Counters) local(kind Kind) *int64 {
	switch kind {
	case KindBook:
		return &c.Book
	case KindMovie:
		return &c.Movie
	case KindAnime:
		return &c.Anime
	case KindTelevision:
		return &c.Television
	}
	return nil
}

// Issuer owns the global counter and one counter per kind. IDs start at 1
// and are never reused. Not safe for concurrent use.
type Issuer struct {
	counters Counters
}

// NewIssuer returns an issuer with all counters at zero.
func NewIssuer() *Issuer {
	return &Issuer{}
}

// Issue advances the global counter and the counter for kind.
func (i *Issuer) Issue(kind Kind) Identity {
	return Identity{Global: i.IssueGlobal(), Local: i.IssueLocal(kind)}
}

// IssueGlobal advances only the global counter.
func (i *Issuer) IssueGlobal() int64 {
	i.counters.Global++
	return i.counters.Global
}

// IssueLocal advances only the counter for kind. Unrecognized kinds get 0.
func (i *Issuer) IssueLocal(kind Kind) int64 {
	local := i.counters.local(kind)
	if local == nil {
		return 0
	}
	*local++
	return *local
}

// Counters returns a copy of the current counter state.
func (i *Issuer) Counters() Counters {
	return i.counters
}

// Restore replaces the counter state, typically from a saved snapshot.
func (i *Issuer) Restore(c Counters) {
	i.counters = c
}

// Observe raises the counters so that id is never issued again.
func (i *Issuer) Observe(kind Kind, id Identity) {
	if id.Global > i.counters.Global {
		i.counters.Global = id.Global
	}
	if local := i.counters.local(kind); local != nil && id.Local > *local {
		*local = id.Local
	}
}
