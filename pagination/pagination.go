// Package pagination builds the page-number strip shown under listings.
package pagination

import "strconv"

// DefaultRadius is the number of neighbours shown on each side of the current page.
const DefaultRadius = 2

// PageDescriptor is one entry of the page strip: a page number, or a gap.
type PageDescriptor struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Gap is the ellipsis marker.
var Gap = PageDescriptor{Ellipsis: true}

// P returns a concrete page descriptor.
func P(n int) PageDescriptor { return PageDescriptor{Page: n} }

// String renders a page number or "...".
func (d PageDescriptor) String() string {
	if d.Ellipsis {
		return "..."
	}
	return strconv.Itoa(d.Page)
}

// BuildPageSequence returns the strip for currentPage out of totalPages:
// page 1, an optional gap, the window of pages within radius of currentPage,
// an optional gap and the last page. It never returns more than 2*radius+5
// entries. currentPage is not validated; callers clamp it with ClampPage.
func BuildPageSequence(currentPage, totalPages, radius int) []PageDescriptor {
	if totalPages <= 1 {
		return []PageDescriptor{P(1)}
	}
	if radius < 0 {
		radius = 0
	}

	rangeStart := max(2, currentPage-radius)
	rangeEnd := min(totalPages-1, currentPage+radius)

	pages := make([]PageDescriptor, 0, 2*radius+5)
	pages = append(pages, P(1))
	if rangeStart > 2 {
		pages = append(pages, Gap)
	}
	for i := rangeStart; i <= rangeEnd; i++ {
		pages = append(pages, P(i))
	}
	if rangeEnd < totalPages-1 {
		pages = append(pages, Gap)
	}
	return append(pages, P(totalPages))
}

// TotalPages returns ceil(totalCount/pageSize).
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// ClampPage normalizes a requested page: anything below 1 becomes 1 and, when
// totalPages is known (> 0), anything past the end becomes totalPages.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}

// Pager is the full pagination control for a listing page.
type Pager struct {
	Current int              `json:"current"`
	Total   int              `json:"total"`
	Prev    *int             `json:"prev_page"`
	Next    *int             `json:"next_page"`
	Pages   []PageDescriptor `json:"pages"`
}

// NewPager builds the control for currentPage of totalPages. Prev/Next are nil
// at the edges.
func NewPager(currentPage, totalPages, radius int) Pager {
	p := Pager{
		Current: currentPage,
		Total:   totalPages,
		Pages:   BuildPageSequence(currentPage, totalPages, radius),
	}
	if currentPage > 1 {
		prev := currentPage - 1
		p.Prev = &prev
	}
	if currentPage < totalPages {
		next := currentPage + 1
		p.Next = &next
	}
	return p
}
