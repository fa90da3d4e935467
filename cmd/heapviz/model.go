package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lsw8075/malloc-lab/hostmem"
	"github.com/lsw8075/malloc-lab/malloc"
	"github.com/lsw8075/malloc-lab/trace"
)

// model is heapviz's Bubble Tea root: a trace, how far through it the
// user has stepped, and the heap that replay produced at that point.
type model struct {
	ops       []trace.Op
	arenaSize int
	backing   string
	cursor    int // number of ops applied so far

	heap     *malloc.Heap
	replayer *trace.Replayer
	lastErr  error
	checkOK  bool
	checkErr error

	keys     KeyMap
	help     helpModel
	showHelp bool
	width    int
	height   int
}

func newModel(ops []trace.Op, arenaSize int, backing string) (*model, error) {
	keys := DefaultKeyMap()
	m := &model{ops: ops, arenaSize: arenaSize, backing: backing, keys: keys, help: newHelpModel(keys)}
	if err := m.rebuild(); err != nil {
		return nil, err
	}
	return m, nil
}

// rebuild replays ops[:cursor] from a fresh heap. heapviz has no undo
// log, so stepping backward just replays forward from the start.
func (m *model) rebuild() error {
	g, err := newGrower(m.backing, m.arenaSize)
	if err != nil {
		return err
	}
	h := malloc.NewHeap(g)
	if err := h.Init(); err != nil {
		return err
	}
	r := trace.NewReplayer(h)

	m.heap = h
	m.replayer = r
	m.lastErr = nil

	for i := 0; i < m.cursor; i++ {
		if err := r.Apply(m.ops[i]); err != nil {
			m.lastErr = err
			m.cursor = i
			break
		}
	}
	m.checkOK, m.checkErr = h.Check()
	return nil
}

func (m *model) stepForward() {
	if m.cursor >= len(m.ops) {
		return
	}
	op := m.ops[m.cursor]
	if err := m.replayer.Apply(op); err != nil {
		m.lastErr = err
		return
	}
	m.cursor++
	m.checkOK, m.checkErr = m.heap.Check()
}

func (m *model) stepBackward() {
	if m.cursor == 0 {
		return
	}
	m.cursor--
	_ = m.rebuild()
}

func (m *model) currentOp() (trace.Op, bool) {
	if m.cursor == 0 || m.cursor > len(m.ops) {
		return trace.Op{}, false
	}
	return m.ops[m.cursor-1], true
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.viewport.Width = helpWidth
		m.help.viewport.Height = helpHeight
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch {
			case key.Matches(msg, m.keys.Help):
				m.showHelp = false
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			default:
				var hm tea.Model
				var cmd tea.Cmd
				hm, cmd = m.help.Update(msg)
				m.help = hm.(helpModel)
				return m, cmd
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			m.help.setContent(m.checkOK, m.checkErr)
		case key.Matches(msg, m.keys.Yank):
			_ = copyMetricsToClipboard(m.heap.Metrics())
		case key.Matches(msg, m.keys.Forward):
			m.stepForward()
		case key.Matches(msg, m.keys.Backward):
			m.stepBackward()
		}
		return m, nil
	}
	return m, nil
}

func metricsText(mm malloc.HeapMetrics) string {
	return fmt.Sprintf(
		"allocated: %d\nfree: %d\ncapacity: %d\nlargest free: %d\nutilization: %.2f%%",
		mm.BytesAllocated, mm.BytesFree, mm.ArenaCapacity, mm.LargestFreeByte, mm.Utilization*100,
	)
}

// newGrower builds the hostmem.Grower named by backing ("byte" or
// "mmap"), the same selector mallocctl's --backing flag exposes.
func newGrower(backing string, arenaSize int) (hostmem.Grower, error) {
	switch backing {
	case "", "byte":
		return hostmem.NewByteArena(arenaSize), nil
	case "mmap":
		return hostmem.NewMmapArena(arenaSize), nil
	default:
		return nil, fmt.Errorf("heapviz: unknown --backing %q (want \"byte\" or \"mmap\")", backing)
	}
}
