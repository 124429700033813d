package instantevent

import "math"

// PageWindow is the createCount window for one page of the event list.
// The pagination walks the createCount sequence backwards: it assumes the
// sequence is dense and gapless starting at 1 (events are never hard
// deleted), so StartAt is a createCount value, not a row offset.
type PageWindow struct {
	TotalElements int
	TotalPages    int
	// StartAt is the createCount of the first (newest) event on the page.
	StartAt int
	// Empty is set when the requested page is past the end.
	Empty bool
}

// CalcPageWindow computes the window for a 1-based page over a counter
// value. The counter is 1-indexed against creation count, hence the -1.
func CalcPageWindow(count, page, size int) PageWindow {
	totalElements := count - 1
	if totalElements < 0 {
		totalElements = 0
	}
	totalPages := 0
	if size > 0 {
		totalPages = int(math.Ceil(float64(totalElements) / float64(size)))
	}
	startAt := totalElements - (page-1)*size
	if startAt < 0 {
		return PageWindow{TotalElements: totalElements, TotalPages: totalPages, Empty: true}
	}
	return PageWindow{TotalElements: totalElements, TotalPages: totalPages, StartAt: startAt}
}
