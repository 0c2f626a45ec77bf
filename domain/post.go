package domain

import "time"

// PostType tells the viewer how to interpret a post's resource ID.
type PostType string

const (
	TypeDocs        PostType = "docs"
	TypeSlide       PostType = "slide"
	TypeImage       PostType = "img"
	TypePDF         PostType = "pdf"
	TypeSpreadsheet PostType = "spreadsheet"
	TypeHTML        PostType = "html"
	TypeFolder      PostType = "folder"
)

// Post is one entry of the homepage feed.
// RowIndex is assigned by the remote sheet and is the only join key
// between list entries, the liked set and the viewer.
type Post struct {
	RowIndex int      `json:"rowIndex"`
	Title    string   `json:"title"`
	Note     string   `json:"note"`
	Tag      string   `json:"tag,omitempty"`
	Date     string   `json:"date"` // ISO 8601, as stored in the sheet
	Link     string   `json:"link,omitempty"`
	Type     PostType `json:"type"`
	ID       string   `json:"id"`
	Pin      bool     `json:"pin"`
	Like     int      `json:"like"`
	Share    int      `json:"share"`
}

var postDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
}

// ParsedDate parses the post date. Unparsable dates sort as epoch 0,
// i.e. oldest.
func (p Post) ParsedDate() time.Time {
	for _, layout := range postDateLayouts {
		if t, err := time.Parse(layout, p.Date); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}

// DisplayDate returns the list-row date as YYYY-MM-DD, falling back to
// the raw string when it cannot be parsed.
func (p Post) DisplayDate() string {
	if p.Date == "" {
		return ""
	}
	t := p.ParsedDate()
	if t.Equal(time.Unix(0, 0).UTC()) {
		return p.Date
	}
	return t.Format("2006-01-02")
}

// CacheEnvelope is the persisted form of a full post fetch.
type CacheEnvelope struct {
	Posts     []Post `json:"posts"`
	FetchedAt int64  `json:"fetchedAtEpochMs"`
}

// CacheTTL is how long a stored post list stays valid.
const CacheTTL = 5 * time.Minute

// Fresh reports whether the envelope is still within the TTL.
func (e CacheEnvelope) Fresh(now time.Time) bool {
	if e.FetchedAt <= 0 {
		return false
	}
	age := now.UnixMilli() - e.FetchedAt
	return age < CacheTTL.Milliseconds()
}
