package page

// PerPage is the fixed size of every listing
const PerPage = 10

// Request is the page asked for by a caller, 1-based
type Request struct {
	Page int
}

// New clamps anything below 1 to the first page
func New(p int) Request {
	if p < 1 {
		p = 1
	}
	return Request{Page: p}
}

func (r Request) Number() int {
	if r.Page < 1 {
		return 1
	}
	return r.Page
}

func (r Request) Limit() uint {
	return PerPage
}

func (r Request) Offset() uint {
	return uint((r.Number() - 1) * PerPage)
}

// Result is one page of a listing
type Result[T any] struct {
	Items       []T
	CurrentPage int
	PerPage     int
	Total       int64
	LastPage    int
}

func NewResult[T any](items []T, r Request, total int64) Result[T] {
	if items == nil {
		items = []T{}
	}
	last := int((total + PerPage - 1) / PerPage)
	if last < 1 {
		last = 1
	}
	return Result[T]{
		Items:       items,
		CurrentPage: r.Number(),
		PerPage:     PerPage,
		Total:       total,
		LastPage:    last,
	}
}

// Map converts the items of a page, keeping its counters
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := make([]U, 0, len(r.Items))
	for _, item := range r.Items {
		out = append(out, fn(item))
	}
	return Result[U]{
		Items:       out,
		CurrentPage: r.CurrentPage,
		PerPage:     r.PerPage,
		Total:       r.Total,
		LastPage:    r.LastPage,
	}
}
