package portfolio

// Record type discriminators stored in the content document.
const (
	TypeBlog  = "blog"
	TypePaper = "paper"
)

// ContentStore is the JSON document holding all post and paper metadata.
// Records within each slice are kept in creation order.
type ContentStore struct {
	Posts  []PostRecord  `json:"posts"`
	Papers []PaperRecord `json:"papers"`
}

// PostRecord is the metadata for one published blog post. The rendered
// document lives in the blog directory under <slug>.html.
type PostRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Image       string `json:"image,omitempty"`
	CreatedDate string `json:"created_date"`
	Type        string `json:"type"`
}

// PaperRecord is the metadata for one uploaded paper. Filename is the
// timestamp-prefixed on-disk name in the papers directory.
type PaperRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Filename    string `json:"filename"`
	UploadDate  string `json:"upload_date"`
	Type        string `json:"type"`
}

// ImageInfo describes an uploaded image asset. Images carry no content
// record; posts reference them by path.
type ImageInfo struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// Removed describes a record taken out of the store by RemoveByID, carrying
// enough to delete the on-disk artifact afterwards.
type Removed struct {
	Type     string
	Filename string // papers
	Slug     string // posts
}

// FindByID returns the record with the given id from either slice.
func (cs *ContentStore) FindByID(id string) (any, bool) {
	for i := range cs.Posts {
		if cs.Posts[i].ID == id {
			return cs.Posts[i], true
		}
	}
	for i := range cs.Papers {
		if cs.Papers[i].ID == id {
			return cs.Papers[i], true
		}
	}
	return nil, false
}

// RemoveByID deletes the matching post or paper in place, preserving the
// order of the remaining records.
func (cs *ContentStore) RemoveByID(id string) (Removed, bool) {
	for i := range cs.Posts {
		if cs.Posts[i].ID == id {
			removed := Removed{Type: TypeBlog, Slug: cs.Posts[i].Slug}
			cs.Posts = append(cs.Posts[:i], cs.Posts[i+1:]...)
			return removed, true
		}
	}
	for i := range cs.Papers {
		if cs.Papers[i].ID == id {
			removed := Removed{Type: TypePaper, Filename: cs.Papers[i].Filename}
			cs.Papers = append(cs.Papers[:i], cs.Papers[i+1:]...)
			return removed, true
		}
	}
	return Removed{}, false
}

// HasSlug reports whether any post already uses slug.
func (cs *ContentStore) HasSlug(slug string) bool {
	for i := range cs.Posts {
		if cs.Posts[i].Slug == slug {
			return true
		}
	}
	return false
}
