package browse

import "hompy/domain"

// PageSize is the number of posts materialized per page.
const PageSize = 10

// Paginator slices the filtered/sorted view into fixed-size pages and
// tracks exhaustion.
type Paginator struct {
	page      int
	exhausted bool
}

// NextSlice returns the next page of the view and advances the page
// cursor. Exhaustion is set when the returned slice reaches the end of
// the view, including the empty-slice case.
func (p *Paginator) NextSlice(view []domain.Post) []domain.Post {
	start := p.page * PageSize
	if start >= len(view) {
		p.exhausted = true
		return nil
	}
	end := start + PageSize
	if end >= len(view) {
		end = len(view)
		p.exhausted = true
	}
	p.page++
	return view[start:end]
}

// Exhausted reports whether the view has been fully paged out.
func (p *Paginator) Exhausted() bool {
	return p.exhausted
}

// Page returns the 0-based index of the next page to serve.
func (p *Paginator) Page() int {
	return p.page
}

// Reset rewinds to page zero and clears exhaustion.
func (p *Paginator) Reset() {
	p.page = 0
	p.exhausted = false
}
