package media

// Book is a printed or digital book. Its length is the page count.
type Book struct {
	Media
	localID int64

	Author    string
	Binding   string
	Publisher string // empty when unknown
}

// BookParams are the inputs to NewBook.
type BookParams struct {
	CommonParams
	Pages     int
	Author    string
	Binding   string
	Publisher string
}

// NewBook validates p and assigns the next book identity from ids.
func NewBook(ids IdentitySource, p BookParams) (*Book, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := positive("pages", p.Pages); err != nil {
		return nil, err
	}
	if err := required("author", p.Author); err != nil {
		return nil, err
	}
	if err := required("binding", p.Binding); err != nil {
		return nil, err
	}

	id := ids.Issue(KindBook)
	return &Book{
		Media:     newMedia(id, p.CommonParams, p.Pages),
		localID:   id.Local,
		Author:    p.Author,
		Binding:   p.Binding,
		Publisher: p.Publisher,
	}, nil
}

func (b *Book) Kind() Kind     { return KindBook }
func (b *Book) LocalID() int64 { return b.localID }
func (b *Book) entity()        {}

// Pages is the page count.
func (b *Book) Pages() int { return b.length }

// SetPages updates the page count. Non-positive values are rejected.
func (b *Book) SetPages(pages int) error {
	if err := positive("pages", pages); err != nil {
		return err
	}
	b.length = pages
	return nil
}
