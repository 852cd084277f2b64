package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/staggered-menu/internal/overlay"
	uistate "github.com/atomicstack/staggered-menu/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	panelFraction = 0.4
	panelMinWidth = 28
	panelPadding  = 2

	hiddenLift  = 100.0
	liftPerCell = 25.0
	tiltItalic  = 3.0
	numberShown = 0.5
	numberFaint = 0.05
)

// layout is the screen geometry derived from the terminal size.
type layout struct {
	width     int
	height    int
	bodyTop   int
	bodyRows  int
	panelW    int
	anchorX   int
	toggle    overlay.Rect
	entryTop  int
	entryRows int
}

func (l layout) panelRect() overlay.Rect {
	return overlay.Rect{X: l.anchorX, Y: l.bodyTop, W: l.panelW, H: l.bodyRows}
}

// entryAt maps a screen cell to a panel entry index, or -1.
func (l layout) entryAt(x, y, offset, total int) int {
	if !l.panelRect().Contains(x, y) {
		return -1
	}
	row := y - l.entryTop
	if row < 0 || row >= l.entryRows {
		return -1
	}
	idx := offset + row
	if idx >= total {
		return -1
	}
	return idx
}

func (m *Model) layout() layout {
	w, h := m.viewWidth(), m.viewHeight()
	footerRows := 1
	if m.opts.ShowFooter {
		footerRows++
	}
	lay := layout{width: w, height: h, bodyTop: 1}
	lay.bodyRows = h - lay.bodyTop - footerRows
	if lay.bodyRows < 0 {
		lay.bodyRows = 0
	}
	lay.panelW = int(float64(w) * panelFraction)
	if lay.panelW < panelMinWidth {
		lay.panelW = panelMinWidth
	}
	if lay.panelW > w {
		lay.panelW = w
	}
	if m.opts.Position == overlay.PositionRight {
		lay.anchorX = w - lay.panelW
	}
	bw := ansi.StringWidth(m.buttonText())
	lay.toggle = overlay.Rect{X: w - bw, Y: 0, W: bw, H: 1}
	if lay.toggle.X < 0 {
		lay.toggle.X = 0
	}
	userRows := 0
	if m.session.SignedIn {
		userRows = 2
	}
	lay.entryTop = lay.bodyTop + 1
	lay.entryRows = lay.bodyRows - 1 - userRows
	if lay.entryRows < 0 {
		lay.entryRows = 0
	}
	return lay
}

// View implements tea.Model.
func (m *Model) View() string {
	lay := m.layout()
	lines := make([]string, 0, lay.height)
	lines = append(lines, m.renderHeader(lay))
	body := m.renderBody(lay)
	m.composeOverlay(body, lay)
	lines = append(lines, body...)
	lines = append(lines, padLine(m.statusLine(), lay.width))
	if m.opts.ShowFooter {
		lines = append(lines, padLine(m.help.View(m.keys), lay.width))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) buttonText() string {
	return m.overlay.Label() + " " + iconGlyph(m.overlay.IconAngle())
}

// iconGlyph approximates the rotating plus icon in a single cell.
func iconGlyph(angle float64) string {
	switch {
	case angle < 60:
		return "+"
	case angle < 180:
		return "*"
	default:
		return "x"
	}
}

func (m *Model) renderHeader(lay layout) string {
	logo := m.styles.Logo.Render(m.opts.Logo)
	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.overlay.ButtonColor())).
		Bold(true).
		Render(m.buttonText())
	gap := lay.width - lipgloss.Width(logo) - lipgloss.Width(button)
	if gap < 1 {
		gap = 1
	}
	return padLine(logo+strings.Repeat(" ", gap)+button, lay.width)
}

func (m *Model) renderBody(lay layout) []string {
	title, content := m.page()
	titleStyle, bodyStyle := m.styles.Header, m.styles.Body
	if m.overlay.Open() {
		titleStyle, bodyStyle = m.styles.BodyDim, m.styles.BodyDim
	}
	width := lay.width - 2
	if width < 1 {
		width = 1
	}
	rows := []string{"", "  " + titleStyle.Render(truncate.StringWithTail(title, uint(width), "…")), ""}
	for _, line := range content {
		rows = append(rows, "  "+bodyStyle.Render(truncate.StringWithTail(line, uint(width), "…")))
	}
	body := make([]string, lay.bodyRows)
	for i := range body {
		if i < len(rows) {
			body[i] = padLine(rows[i], lay.width)
		} else {
			body[i] = strings.Repeat(" ", lay.width)
		}
	}
	return body
}

// composeOverlay paints the background layers bottom first, then the panel,
// each shifted by its live offset.
func (m *Model) composeOverlay(body []string, lay layout) {
	if len(body) == 0 {
		return
	}
	offsets := m.overlay.LayerOffsets()
	colors := m.opts.layerColors()
	blank := strings.Repeat(" ", lay.panelW)
	for i, off := range offsets {
		if i >= len(colors) {
			break
		}
		x := lay.anchorX + shiftCols(off, lay.panelW)
		slab := lipgloss.NewStyle().Background(lipgloss.Color(colors[i])).Render(blank)
		for r := range body {
			body[r] = overlayAt(body[r], slab, x, lay.width)
		}
	}
	x := lay.anchorX + shiftCols(m.overlay.PanelOffset(), lay.panelW)
	if x >= lay.width || x+lay.panelW <= 0 {
		return
	}
	for r, line := range m.renderPanel(lay) {
		if r < len(body) {
			body[r] = overlayAt(body[r], line, x, lay.width)
		}
	}
}

func (m *Model) renderPanel(lay layout) []string {
	bg := m.styles.Panel
	blank := bg.Render(strings.Repeat(" ", lay.panelW))
	out := make([]string, 0, lay.bodyRows)
	out = append(out, blank)
	start := m.panel.ViewportOffset
	for row := 0; row < lay.entryRows; row++ {
		idx := start + row
		if idx >= len(m.panel.Entries) {
			out = append(out, blank)
			continue
		}
		out = append(out, m.renderEntry(m.panel.Entries[idx], idx, lay.panelW))
	}
	if m.session.SignedIn {
		out = append(out, blank, m.renderUser(lay.panelW))
	}
	for len(out) < lay.bodyRows {
		out = append(out, blank)
	}
	return out[:lay.bodyRows]
}

func (m *Model) renderEntry(e uistate.Entry, idx, width int) string {
	selected := idx == m.panel.Cursor && m.overlay.Open()
	switch e.Kind {
	case uistate.KindItem:
		return m.renderItem(e, selected, width)
	case uistate.KindSubItem:
		style := m.styles.SubItem
		if m.router.IsActive(e.Link) {
			style = m.styles.ItemActive
		}
		if selected {
			style = m.styles.Selected
		}
		icon := e.Icon
		if icon == "" {
			icon = "-"
		}
		return m.panelRow("  "+icon+" "+e.Label, style, "", nil, width)
	case uistate.KindTheme:
		return m.panelRow(fmt.Sprintf("%s: %s", e.Label, m.themeName()), m.actionStyle(selected), "", nil, width)
	default:
		return m.panelRow(e.Label, m.actionStyle(selected), "", nil, width)
	}
}

func (m *Model) actionStyle(selected bool) *lipgloss.Style {
	if selected {
		return m.styles.Selected
	}
	return m.styles.Action
}

// renderItem draws a top-level item from its live transform: the label rises
// into place as Lift falls, renders italic while tilted, and its number fades
// in with Number.
func (m *Model) renderItem(e uistate.Entry, selected bool, width int) string {
	st := m.overlay.Item(e.Item)
	label := ""
	if st.Lift < hiddenLift {
		indent := int(math.Round(st.Lift / liftPerCell))
		if indent < 0 {
			indent = 0
		}
		label = strings.Repeat(" ", indent) + e.Label
		if e.HasSubmenu(m.visible) {
			if expanded, ok := m.overlay.Expanded(); ok && expanded == e.Item {
				label += " -"
			} else {
				label += " +"
			}
		}
	}
	style := m.styles.Item
	switch {
	case selected:
		style = m.styles.Selected
	case m.router.IsActive(e.Link):
		style = m.styles.ItemActive
	case st.Tilt > tiltItalic:
		style = m.styles.ItemTilted
	}
	number, numberStyle := "", m.styles.Number
	if m.overlay.Numbering() {
		number = fmt.Sprintf("%02d", e.Item+1)
		switch {
		case st.Number >= numberShown:
		case st.Number > numberFaint:
			numberStyle = m.styles.NumberDim
		default:
			number = strings.Repeat(" ", len(number))
		}
	}
	return m.panelRow(label, style, number, numberStyle, width)
}

// panelRow lays out one padded panel line with an optional right-aligned
// suffix.
func (m *Model) panelRow(text string, style *lipgloss.Style, right string, rightStyle *lipgloss.Style, width int) string {
	bg := m.styles.Panel
	inner := width - 2*panelPadding
	if inner < 1 {
		return bg.Render(strings.Repeat(" ", width))
	}
	room := inner
	if right != "" {
		room -= ansi.StringWidth(right) + 1
	}
	if room < 1 {
		room, right = inner, ""
	}
	if ansi.StringWidth(text) > room {
		text = truncate.StringWithTail(text, uint(room), "…")
	}
	gap := inner - ansi.StringWidth(text) - ansi.StringWidth(right)
	row := bg.Render(strings.Repeat(" ", panelPadding))
	if text != "" {
		row += style.Render(text)
	}
	row += bg.Render(strings.Repeat(" ", gap))
	if right != "" {
		if rightStyle == nil {
			rightStyle = bg
		}
		row += rightStyle.Render(right)
	}
	row += bg.Render(strings.Repeat(" ", panelPadding))
	return padLine(row, width)
}

func (m *Model) renderUser(width int) string {
	avatar := m.styles.Avatar.Render(" " + m.session.Initial() + " ")
	name := m.session.Name()
	if m.session.Admin {
		name += " (admin)"
	}
	room := width - 2*panelPadding - lipgloss.Width(avatar) - 1
	if room < 1 {
		room = 1
	}
	row := m.styles.Panel.Render(strings.Repeat(" ", panelPadding)) + avatar +
		m.styles.User.Render(" "+truncate.StringWithTail(name, uint(room), "…"))
	used := lipgloss.Width(row)
	if used < width {
		row += m.styles.Panel.Render(strings.Repeat(" ", width-used))
	}
	return padLine(row, width)
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return m.styles.Error.Render(fmt.Sprintf("Error: %s", m.errMsg))
	}
	if info := m.currentInfo(); info != "" {
		return m.styles.Info.Render(info)
	}
	return m.styles.Footer.Render(m.router.Current())
}
