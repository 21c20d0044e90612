package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mstolbov/attractor/internal/chaos"
	"github.com/mstolbov/attractor/internal/integrate"
)

const (
	canvasWidth   = 80
	canvasHeight  = 24
	trailCapacity = 4000
	graphCapacity = 120
	stepsPerTick  = 8
)

type TickMsg time.Time

// Model is the live orbit view: it steps the attractor at frame rate,
// keeps a trailing window of the orbit, and renders it through the camera.
type Model struct {
	family  chaos.Family
	derive  chaos.DeriveFunc
	stepper integrate.Stepper
	dt      float64

	params        chaos.Params
	initialParams chaos.Params
	paramNames    []string
	selected      int

	state    chaos.State
	initial  chaos.State
	iter     int
	trail    chaos.Trajectory
	xHistory []float64

	canvas   *Canvas
	camera   *Camera
	running  bool
	diverged bool
	showHelp bool
}

// NewModel initializes the live view for one family. The parameter slice is
// copied; tuning inside the view never touches the caller's values.
func NewModel(family chaos.Family, stepper integrate.Stepper, params chaos.Params, initial chaos.State, dt float64) Model {
	p := make(chaos.Params, len(params))
	copy(p, params)
	p0 := make(chaos.Params, len(params))
	copy(p0, params)

	return Model{
		family:        family,
		derive:        family.DeriveFunc(),
		stepper:       stepper,
		dt:            dt,
		params:        p,
		initialParams: p0,
		paramNames:    family.ParamNames(),
		state:         initial,
		initial:       initial,
		trail:         make(chaos.Trajectory, 0, trailCapacity),
		xHistory:      make([]float64, 0, graphCapacity),
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		camera:        NewCamera(),
		running:       true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.diverged {
				m.running = !m.running
			}
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			for i := 0; i < stepsPerTick && m.running; i++ {
				m.step()
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step advances the orbit by one integration step.
func (m *Model) step() {
	m.state = m.stepper.Step(m.derive, m.state, m.params, m.dt)
	m.iter++

	if !m.state.IsValid() {
		m.diverged = true
		m.running = false
		return
	}

	m.trail = append(m.trail, m.state)
	if len(m.trail) > trailCapacity {
		m.trail = m.trail[1:]
	}
	m.xHistory = append(m.xHistory, m.state[0])
	if len(m.xHistory) > graphCapacity {
		m.xHistory = m.xHistory[1:]
	}
}

func (m *Model) reset() {
	m.state = m.initial
	m.iter = 0
	m.trail = m.trail[:0]
	m.xHistory = m.xHistory[:0]
	m.diverged = false
	m.running = true
	copy(m.params, m.initialParams)
}

func (m *Model) cycleParam() {
	if len(m.paramNames) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramNames)
}

func (m *Model) adjustParam(factor float64) {
	if m.selected >= len(m.params) {
		return
	}
	if m.params[m.selected] == 0 {
		m.params[m.selected] = 0.01
		return
	}
	m.params[m.selected] *= factor
}

func (m *Model) draw() {
	m.canvas.Clear()
	if len(m.trail) < 2 {
		return
	}
	RenderPath(m.canvas, m.camera, Normalize(m.trail))
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(strings.ReplaceAll(string(m.family), "_", " "))) + "\n")

	status := "RUNNING"
	if m.diverged {
		status = "DIVERGED (press r to reset)"
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.xHistory) > 1 {
		chart := asciigraph.Plot(m.xHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("x"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Iteration") + valueStyle.Render(fmt.Sprintf("%d", m.iter)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%g", m.dt)) + "\n")
	s.WriteString(labelStyle.Render("Position") + valueStyle.Render(fmt.Sprintf("(%.2f, %.2f, %.2f)", m.state[0], m.state[1], m.state[2])) + "\n")

	s.WriteString("\nPARAMETERS\n")
	for i, name := range m.paramNames {
		val := m.params[i]
		ref := m.initialParams[i]
		if ref == 0 {
			ref = 1e-6
		}
		barWidth := 10
		ratio := math.Abs(val / (2 * ref))
		if ratio > 1 {
			ratio = 1
		}
		filled := int(ratio * float64(barWidth))
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-8s %s %.4f", name, bar, val)
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nTab/↑↓:Tune  xyz:Rotate  +-:Zoom  ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset orbit and params   ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  x/X y/Y z/Z - Rotate camera         ║
║  + / -    - Zoom                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// RunLive starts the live orbit view and blocks until the user quits.
func RunLive(family chaos.Family, stepper integrate.Stepper, params chaos.Params, initial chaos.State, dt float64) error {
	p := tea.NewProgram(NewModel(family, stepper, params, initial, dt))
	_, err := p.Run()
	return err
}
