package ui

// Screen geometry shared by rendering and mouse hit-testing. Rows are counted
// from the top of the terminal:
//
//	0            header
//	1            title row with the ‹ › controls
//	2..8         card track
//	9            dot indicators
//	height-1     short help
const (
	headerRows   = 1
	cardLines    = 5
	cardHeight   = cardLines + 2 // border
	cardGap      = 1
	minCardWidth = 14
	controlWidth = 3 // " ‹ "
)

type hitKind int

const (
	hitNone hitKind = iota
	hitPrev
	hitNext
	hitDot
)

type layout struct {
	width     int
	titleRow  int
	trackTop  int
	dotsRow   int
	cardWidth int
	prevX     int
	nextX     int
	dotsX     int
	dots      int
}

func computeLayout(width, window, dots int) layout {
	l := layout{width: width, titleRow: headerRows, dots: dots}
	l.trackTop = l.titleRow + 1
	l.dotsRow = l.trackTop + cardHeight
	l.nextX = max(0, width-1-controlWidth)
	l.prevX = max(0, l.nextX-1-controlWidth)
	l.cardWidth = cardWidthFor(width, window)
	if dots > 0 {
		l.dotsX = max(0, (width-dotsWidth(dots))/2)
	}
	return l
}

func cardWidthFor(width, window int) int {
	if window <= 0 {
		window = 1
	}
	return max((width-(window-1)*cardGap)/window, minCardWidth)
}

// dotsWidth is the rendered width of n dots separated by single spaces.
func dotsWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return 2*n - 1
}

// contains reports whether the cell lies inside the carousel region, which
// spans the title row, the track and the dots.
func (l layout) contains(x, y int) bool {
	return x >= 0 && x < l.width && y >= l.titleRow && y <= l.dotsRow
}

// hit resolves a click to a control. For dots it also returns the dot index.
func (l layout) hit(x, y int) (hitKind, int) {
	switch y {
	case l.titleRow:
		if x >= l.prevX && x < l.prevX+controlWidth {
			return hitPrev, 0
		}
		if x >= l.nextX && x < l.nextX+controlWidth {
			return hitNext, 0
		}
	case l.dotsRow:
		offset := x - l.dotsX
		if offset >= 0 && offset%2 == 0 && offset/2 < l.dots {
			return hitDot, offset / 2
		}
	}
	return hitNone, 0
}
