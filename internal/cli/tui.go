package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/geometry"
	"github.com/staircast/staircast/pkg/spec"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// fixedRows is the number of editor rows before the landing rows start.
// Each landing contributes two rows, one for its step and one for its depth.
const fixedRows = 5

// Adjustment increments per row kind.
const (
	stepHeight = 5.0 // total height and width
	stepDepth  = 1.0 // tread depth and slab thickness
	stepLand   = 5.0 // landing depth
)

// =============================================================================
// EditorModel - Interactive spec editing
// =============================================================================

// EditorModel is the bubbletea model for the spec editor. The left panel
// lists the editable fields, the right panel shows geometry numbers
// recomputed after every change.
type EditorModel struct {
	Path    string
	Spec    spec.Staircase
	Cursor  int
	Dirty   bool
	Saved   bool
	Profile *geometry.Profile
	Problem string // validation error for the current state, empty when valid
}

// NewEditorModel creates an editor for the given spec, bound to path for saving.
func NewEditorModel(path string, sp spec.Staircase) EditorModel {
	m := EditorModel{Path: path, Spec: sp}
	m.refresh()
	return m
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < m.rowCount()-1 {
				m.Cursor++
			}
		case "+", "=", "right", "l":
			m.adjust(1)
		case "-", "_", "left", "h":
			m.adjust(-1)
		case "a":
			m.addLanding()
		case "d", "x":
			m.deleteLanding()
		case "s", "ctrl+s":
			m.save()
		}
	}
	return m, nil
}

func (m EditorModel) View() string {
	var fields strings.Builder
	for i, row := range m.rows() {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-16s %8s", cursor, row.label, row.value)
		if i == m.Cursor {
			fields.WriteString(listSelectedStyle.Render(line))
		} else {
			fields.WriteString(listNormalStyle.Render(line))
		}
		fields.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Edit " + m.Path))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  +/- adjust  a add landing  d delete landing  s save  q quit"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(strings.TrimRight(fields.String(), "\n")),
		" ",
		panelStyle.Render(m.numbersPanel()),
	))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	return b.String()
}

// =============================================================================
// Rows
// =============================================================================

// editorRow is one selectable line in the field list.
type editorRow struct {
	label string
	value string
}

func (m EditorModel) rows() []editorRow {
	rows := []editorRow{
		{"Total height", fmt.Sprintf("%.0f", m.Spec.TotalHeight)},
		{"Width", fmt.Sprintf("%.0f", m.Spec.Width)},
		{"Steps", fmt.Sprintf("%d", m.Spec.NumSteps)},
		{"Step depth", fmt.Sprintf("%.0f", m.Spec.StepDepth)},
		{"Slab thickness", fmt.Sprintf("%.0f", m.Spec.SlabThickness)},
	}
	for i, l := range m.Spec.Landings {
		rows = append(rows,
			editorRow{fmt.Sprintf("Landing %d step", i+1), fmt.Sprintf("%d", l.StepIndex)},
			editorRow{fmt.Sprintf("Landing %d depth", i+1), fmt.Sprintf("%.0f", l.Depth)},
		)
	}
	return rows
}

func (m EditorModel) rowCount() int {
	return fixedRows + 2*len(m.Spec.Landings)
}

// landingAt maps a cursor position to a landing index, or -1 for the
// fixed rows.
func (m EditorModel) landingAt(cursor int) int {
	if cursor < fixedRows {
		return -1
	}
	return (cursor - fixedRows) / 2
}

// =============================================================================
// Mutations
// =============================================================================

// adjust nudges the value under the cursor by its increment, dir is +1 or -1.
func (m *EditorModel) adjust(dir int) {
	d := float64(dir)
	switch m.Cursor {
	case 0:
		m.Spec.TotalHeight = max(1, m.Spec.TotalHeight+stepHeight*d)
	case 1:
		m.Spec.Width = max(1, m.Spec.Width+stepHeight*d)
	case 2:
		if next := m.Spec.NumSteps + dir; next >= 1 && next <= spec.MaxSteps {
			m.Spec.NumSteps = next
		}
	case 3:
		m.Spec.StepDepth = max(1, m.Spec.StepDepth+stepDepth*d)
	case 4:
		m.Spec.SlabThickness = max(0, m.Spec.SlabThickness+stepDepth*d)
	default:
		li := m.landingAt(m.Cursor)
		if li >= len(m.Spec.Landings) {
			return
		}
		if (m.Cursor-fixedRows)%2 == 0 {
			if next := m.Spec.Landings[li].StepIndex + dir; next >= 1 {
				m.Spec.Landings[li].StepIndex = next
			}
		} else {
			m.Spec.Landings[li].Depth = max(1, m.Spec.Landings[li].Depth+stepLand*d)
		}
	}
	m.touch()
}

// addLanding inserts a landing on a free step near the middle of the
// flight. No-op when every step already carries one.
func (m *EditorModel) addLanding() {
	used := make(map[int]bool, len(m.Spec.Landings))
	for _, l := range m.Spec.Landings {
		used[l.StepIndex] = true
	}

	idx := -1
	mid := m.Spec.NumSteps / 2
	if mid < 1 {
		mid = 1
	}
	for i := mid; i <= m.Spec.NumSteps; i++ {
		if !used[i] {
			idx = i
			break
		}
	}
	for i := mid - 1; idx == -1 && i >= 1; i-- {
		if !used[i] {
			idx = i
		}
	}
	if idx == -1 {
		return
	}

	m.Spec.Landings = append(m.Spec.Landings, spec.Landing{
		ID:        uuid.NewString(),
		StepIndex: idx,
		Depth:     80,
	})
	m.Cursor = fixedRows + 2*(len(m.Spec.Landings)-1)
	m.touch()
}

// deleteLanding removes the landing under the cursor.
func (m *EditorModel) deleteLanding() {
	li := m.landingAt(m.Cursor)
	if li < 0 || li >= len(m.Spec.Landings) {
		return
	}
	m.Spec.Landings = append(m.Spec.Landings[:li], m.Spec.Landings[li+1:]...)
	if m.Cursor >= m.rowCount() {
		m.Cursor = m.rowCount() - 1
	}
	m.touch()
}

// save writes the spec back to its file. Invalid specs stay in the
// editor until fixed.
func (m *EditorModel) save() {
	if m.Problem != "" {
		return
	}
	if err := spec.Save(m.Path, m.Spec); err != nil {
		m.Problem = errors.UserMessage(err)
		return
	}
	m.Saved = true
	m.Dirty = false
}

func (m *EditorModel) touch() {
	m.Dirty = true
	m.Saved = false
	m.refresh()
}

// refresh revalidates the spec and recomputes the numbers panel. The
// panel keeps the last good profile while the spec is invalid.
func (m *EditorModel) refresh() {
	sp := m.Spec
	sp.Landings = append([]spec.Landing(nil), m.Spec.Landings...)
	if err := sp.Validate(); err != nil {
		m.Problem = errors.UserMessage(err)
		return
	}
	sp.Normalize()

	p, err := geometry.Compute(sp)
	if err != nil {
		m.Problem = errors.UserMessage(err)
		return
	}
	m.Problem = ""
	m.Profile = p
}

// =============================================================================
// Panels
// =============================================================================

func (m EditorModel) numbersPanel() string {
	if m.Profile == nil {
		return listDimStyle.Render("no geometry yet")
	}

	p := m.Profile
	stride := 2*p.RiserHeight + p.StepDepth
	angle := p.Slope.Angle * 180 / math.Pi

	lines := []string{
		fmt.Sprintf("%-12s %s", "Riser", StyleNumber.Render(fmt.Sprintf("%6.1f", p.RiserHeight))),
		fmt.Sprintf("%-12s %s", "Tread", StyleNumber.Render(fmt.Sprintf("%6.1f", p.StepDepth))),
		fmt.Sprintf("%-12s %s", "2R+T", StyleNumber.Render(fmt.Sprintf("%6.1f", stride))),
		fmt.Sprintf("%-12s %s", "Angle", StyleNumber.Render(fmt.Sprintf("%5.1f°", angle))),
		fmt.Sprintf("%-12s %s", "Total run", StyleNumber.Render(fmt.Sprintf("%6.1f", p.TotalRun))),
		fmt.Sprintf("%-12s %s", "Total rise", StyleNumber.Render(fmt.Sprintf("%6.1f", p.TotalRise))),
		fmt.Sprintf("%-12s %s", "Vertices", StyleNumber.Render(fmt.Sprintf("%6d", len(p.Polygon)))),
	}
	return strings.Join(lines, "\n")
}

func (m EditorModel) statusLine() string {
	switch {
	case m.Problem != "":
		return StyleWarning.Render(iconWarning + " " + m.Problem)
	case m.Saved:
		return StyleSuccess.Render(iconSuccess + " saved")
	case m.Dirty:
		return listDimStyle.Render("unsaved changes")
	default:
		return ""
	}
}
