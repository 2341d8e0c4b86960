package media

import "fmt"

// Episodic is the progress state shared by anime and television. The
// length of the embedded Media is the total episode count, and
// 0 <= watched <= total holds after every accepted update.
type Episodic struct {
	Media
	watched    int
	numSeasons int
}

// EpisodicEntity is implemented by *Anime and *Television.
type EpisodicEntity interface {
	Entity
	Progress() *Episodic
}

// EpisodicParams are the episode-related construction inputs.
type EpisodicParams struct {
	CommonParams
	EpisodesTotal   int
	EpisodesWatched int
	NumSeasons      int // 0 means 1
}

func (p EpisodicParams) validate() error {
	if err := p.CommonParams.validate(); err != nil {
		return err
	}
	if err := positive("episodes total", p.EpisodesTotal); err != nil {
		return err
	}
	if err := checkWatched(p.EpisodesWatched, p.EpisodesTotal); err != nil {
		return err
	}
	if p.NumSeasons < 0 {
		return fmt.Errorf("%w: seasons must be positive, got %d", ErrInvalidArgument, p.NumSeasons)
	}
	return nil
}

// newEpisodic sets the total before the watched count so the watched bound
// is checked against the final total.
func newEpisodic(id Identity, p EpisodicParams) Episodic {
	seasons := p.NumSeasons
	if seasons == 0 {
		seasons = 1
	}
	return Episodic{
		Media:      newMedia(id, p.CommonParams, p.EpisodesTotal),
		watched:    p.EpisodesWatched,
		numSeasons: seasons,
	}
}

// Progress returns the episodic state.
func (e *Episodic) Progress() *Episodic { return e }

// EpisodesTotal is the number of released episodes.
func (e *Episodic) EpisodesTotal() int { return e.length }

// EpisodesWatched is the number of episodes seen so far.
func (e *Episodic) EpisodesWatched() int { return e.watched }

// NumSeasons is the number of seasons, at least 1.
func (e *Episodic) NumSeasons() int { return e.numSeasons }

// SetEpisodesTotal updates the total. It cannot drop below the watched count.
func (e *Episodic) SetEpisodesTotal(total int) error {
	if err := positive("episodes total", total); err != nil {
		return err
	}
	if total < e.watched {
		return fmt.Errorf("%w: episodes total %d is less than episodes watched %d", ErrInvalidArgument, total, e.watched)
	}
	e.length = total
	return nil
}

// SetEpisodesWatched updates the watched count, bounded by the total.
func (e *Episodic) SetEpisodesWatched(watched int) error {
	if err := checkWatched(watched, e.length); err != nil {
		return err
	}
	e.watched = watched
	return nil
}

// SetNumSeasons updates the season count.
func (e *Episodic) SetNumSeasons(n int) error {
	if err := positive("seasons", n); err != nil {
		return err
	}
	e.numSeasons = n
	return nil
}

func checkWatched(watched, total int) error {
	if watched < 0 {
		return fmt.Errorf("%w: episodes watched cannot be negative, got %d", ErrInvalidArgument, watched)
	}
	if watched > total {
		return fmt.Errorf("%w: episodes watched %d exceeds episodes total %d", ErrInvalidArgument, watched, total)
	}
	return nil
}

// Anime is an animated series.
type Anime struct {
	Episodic
	localID int64

	Director string
}

// AnimeParams are the inputs to NewAnime.
type AnimeParams struct {
	EpisodicParams
	Director string
}

// NewAnime validates p and assigns the next anime identity from ids.
func NewAnime(ids IdentitySource, p AnimeParams) (*Anime, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	id := ids.Issue(KindAnime)
	return &Anime{
		Episodic: newEpisodic(id, p.EpisodicParams),
		localID:  id.Local,
		Director: p.Director,
	}, nil
}

func (a *Anime) Kind() Kind     { return KindAnime }
func (a *Anime) LocalID() int64 { return a.localID }
func (a *Anime) entity()        {}

// Television is a live-action series.
type Television struct {
	Episodic
	localID int64

	Showrunner string
	Platform   string
}

// TelevisionParams are the inputs to NewTelevision.
type TelevisionParams struct {
	EpisodicParams
	Showrunner string
	Platform   string
}

// NewTelevision validates p and assigns the next television identity from ids.
func NewTelevision(ids IdentitySource, p TelevisionParams) (*Television, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	id := ids.Issue(KindTelevision)
	return &Television{
		Episodic:   newEpisodic(id, p.EpisodicParams),
		localID:    id.Local,
		Showrunner: p.Showrunner,
		Platform:   p.Platform,
	}, nil
}

func (t *Television) Kind() Kind     { return KindTelevision }
func (t *Television) LocalID() int64 { return t.localID }
func (t *Television) entity()        {}
