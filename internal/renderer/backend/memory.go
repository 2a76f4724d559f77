package backend

// cell is one character cell in the memory backend.
type cell struct {
	Rune  rune
	Style Style
}

// Memory is an in-memory Backend for tests. Events are fed through a
// buffered channel; cell contents can be inspected after rendering.
type Memory struct {
	width  int
	height int
	cells  [][]cell
	events chan Event

	InitCalls int
	FiniCalls int
	ShowCalls int
	BeepCalls int
}

// NewMemory creates a memory backend with the given dimensions.
func NewMemory(width, height int) *Memory {
	m := &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	m.resize(width, height)
	return m
}

func (m *Memory) resize(width, height int) {
	m.width = width
	m.height = height
	m.cells = make([][]cell, height)
	for y := range m.cells {
		m.cells[y] = make([]cell, width)
		for x := range m.cells[y] {
			m.cells[y][x] = cell{Rune: ' '}
		}
	}
}

func (m *Memory) Init() error {
	m.InitCalls++
	return nil
}

func (m *Memory) Fini() {
	m.FiniCalls++
}

func (m *Memory) Size() (int, int) {
	return m.width, m.height
}

func (m *Memory) Clear() {
	m.resize(m.width, m.height)
}

func (m *Memory) SetCell(x, y int, r rune, style Style) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.cells[y][x] = cell{Rune: r, Style: style}
}

func (m *Memory) Show() {
	m.ShowCalls++
}

func (m *Memory) PollEvent() Event {
	ev, ok := <-m.events
	if !ok {
		return Event{Type: EventNone}
	}
	return ev
}

func (m *Memory) PostWake() {
	m.events <- Event{Type: EventWake}
}

func (m *Memory) Beep() {
	m.BeepCalls++
}

// Feed queues an event for PollEvent.
func (m *Memory) Feed(ev Event) {
	m.events <- ev
}

// FeedKey queues a special-key press.
func (m *Memory) FeedKey(k Key) {
	m.Feed(Event{Type: EventKey, Key: k})
}

// FeedRune queues a character key press.
func (m *Memory) FeedRune(r rune) {
	m.Feed(Event{Type: EventKey, Key: KeyRune, Rune: r})
}

// FeedString queues one key press per rune in s.
func (m *Memory) FeedString(s string) {
	for _, r := range s {
		m.FeedRune(r)
	}
}

// Row returns the text content of a row with trailing spaces trimmed.
func (m *Memory) Row(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	runes := make([]rune, m.width)
	for x, c := range m.cells[y] {
		runes[x] = c.Rune
	}
	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	return string(runes[:end])
}

// StyleAt returns the style of the cell at (x, y).
func (m *Memory) StyleAt(x, y int) Style {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return StyleDefault
	}
	return m.cells[y][x].Style
}
