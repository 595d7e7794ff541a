package session

// pager computes how many rows to display on each request: pageSize, 2*pageSize, ... capped to total
type pager struct {
	total    int
	pageSize int
	shown    int
}

func newPager(total int, pageSize int) *pager {
	return &pager{
		total:    total,
		pageSize: pageSize,
	}
}

// next returns the amount of rows to display. The bool is false once every row was displayed
func (p *pager) next() (int, bool) {
	if p.done() {
		return 0, false
	}

	p.shown += p.pageSize
	if p.shown > p.total {
		p.shown = p.total
	}
	return p.shown, true
}

func (p *pager) done() bool {
	return p.shown >= p.total
}
