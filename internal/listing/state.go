package listing

import "github.com/candrasdkd/easywork/internal/model"

// DefaultPageSize matches the list pages' initial pagination model.
const DefaultPageSize = 30

// State is the view state of one list page: the selected month, the search
// text and the pagination model. Changing the search text, the page size or
// the month resets the page index to 0 so the view never lands on a page
// past the end of the narrowed set.
type State struct {
	month    model.Month
	search   string
	page     int
	pageSize int
}

func NewState(month model.Month) *State {
	return &State{month: month, pageSize: DefaultPageSize}
}

func (s *State) Month() model.Month { return s.month }
func (s *State) Search() string     { return s.search }
func (s *State) Page() int          { return s.page }
func (s *State) PageSize() int      { return s.pageSize }

func (s *State) SetSearch(text string) {
	s.search = text
	s.page = 0
}

func (s *State) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	s.page = page
}

func (s *State) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	s.pageSize = size
	s.page = 0
}

func (s *State) SetMonth(m model.Month) {
	s.month = m
	s.page = 0
}

func (s *State) PrevMonth() { s.SetMonth(s.month.Prev()) }
func (s *State) NextMonth() { s.SetMonth(s.month.Next()) }

// Apply runs the filter/paginate pipeline over a fetched month of rows
// according to the current state.
func Apply[T Searchable](s *State, rows []T) (pageRows []T, total int) {
	filtered := Filter(rows, s.search)
	return Paginate(filtered, s.page, s.pageSize)
}
