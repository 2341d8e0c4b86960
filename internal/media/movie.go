package media

// Movie is a feature film. Its length is the runtime in minutes.
type Movie struct {
	Media
	localID int64

	Director          string
	WatchedInTheatres bool
	StreamingPlatform string
	Distributor       string
}

// MovieParams are the inputs to NewMovie.
type MovieParams struct {
	CommonParams
	Runtime           int // minutes
	Director          string
	WatchedInTheatres bool
	StreamingPlatform string
	Distributor       string
}

// NewMovie validates p and assigns the next movie identity from ids.
func NewMovie(ids IdentitySource, p MovieParams) (*Movie, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := positive("runtime", p.Runtime); err != nil {
		return nil, err
	}

	id := ids.Issue(KindMovie)
	return &Movie{
		Media:             newMedia(id, p.CommonParams, p.Runtime),
		localID:           id.Local,
		Director:          p.Director,
		WatchedInTheatres: p.WatchedInTheatres,
		StreamingPlatform: p.StreamingPlatform,
		Distributor:       p.Distributor,
	}, nil
}

func (m *Movie) Kind() Kind     { return KindMovie }
func (m *Movie) LocalID() int64 { return m.localID }
func (m *Movie) entity()        {}

// Runtime is the length in minutes.
func (m *Movie) Runtime() int { return m.length }

// SetRuntime updates the runtime in minutes.
func (m *Movie) SetRuntime(minutes int) error {
	if err := positive("runtime", minutes); err != nil {
		return err
	}
	m.length = minutes
	return nil
}
