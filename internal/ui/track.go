package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palmcrest/showcase/internal/listing"
)

var kindLabels = map[string]string{
	listing.KindApartment: "Apartment",
	listing.KindVilla:     "Villa",
	listing.KindTownhouse: "Townhouse",
	listing.KindPenthouse: "Penthouse",
	listing.KindOffPlan:   "Off-plan",
}

// renderTitleRow renders the section title with the ‹ › controls right aligned
// at the columns recorded in the layout.
func (m Model) renderTitleRow(l layout) string {
	styles := m.theme.Styles()

	left := ""
	if room := l.prevX - 2; room > 0 {
		left = " " + styles.Text.Bold(true).Render(truncate(m.title, room))
	}
	left = lipgloss.NewStyle().Width(l.prevX).MaxWidth(l.prevX).Render(left)

	control := styles.AccentText.Bold(true)
	if m.carousel.TotalSlides() <= 1 {
		control = styles.FaintText
	}
	if m.hovering {
		control = control.Background(lipgloss.Color(m.theme.FocusBg))
	}
	return left + control.Render(" ‹ ") + " " + control.Render(" › ")
}

// renderTrack renders one slide: windowSize cards side by side. Short slides
// are padded with blank placeholders so the track never changes width.
func (m Model) renderTrack(l layout) string {
	items := m.carousel.Display()
	if len(items) == 0 {
		msg := "No listings to show"
		if m.snapshot.LastError != nil && !m.snapshot.HasData() {
			msg = "Listings unavailable"
		}
		return lipgloss.Place(max(m.width, 1), cardHeight, lipgloss.Center, lipgloss.Center,
			m.theme.Styles().MutedText.Render(msg))
	}

	window := m.carousel.WindowSize()
	blocks := make([]string, 0, 2*window)
	for i := 0; i < window; i++ {
		if i > 0 {
			blocks = append(blocks, strings.Repeat(" ", cardGap))
		}
		if i < len(items) {
			blocks = append(blocks, m.renderCard(items[i], l.cardWidth))
		} else {
			blocks = append(blocks, m.renderPlaceholder(l.cardWidth))
		}
	}
	track := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	return lipgloss.NewStyle().MaxWidth(max(m.width, 1)).Render(track)
}

func (m Model) renderCard(item listing.Listing, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	inner := max(width-4, 1) // border and padding

	title := item.Title
	if item.Featured {
		title = "★ " + title
	}

	badge := ""
	if label, ok := kindLabels[item.Kind]; ok {
		badge = styles.KindStyle(item.Kind).Render(label)
	}
	meta := badge
	if item.Image != "" {
		room := inner
		if badge != "" {
			room -= lipgloss.Width(badge) + 1
			meta += " "
		}
		meta += styles.FaintText.Render(truncate(item.Image, room))
	}

	lines := []string{
		styles.Text.Bold(true).Render(truncate(title, inner)),
		styles.MutedText.Render(truncate(item.Community, inner)),
		styles.SuccessText.Render(truncate(listing.FormatPrice(item.PriceAED), inner)),
		styles.Text.Render(truncate(item.Summary(), inner)),
		meta,
	}

	border := m.theme.Border
	if m.hovering {
		border = m.theme.BorderFocus
	}
	return styles.Card.
		BorderForeground(lipgloss.Color(border)).
		Width(width - 2).
		Height(cardLines).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderPlaceholder(width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Width(width - 2).
		Height(cardLines).
		Render("")
}

// renderDots renders the indicator row at the offset recorded in the layout.
func (m Model) renderDots(l layout) string {
	if l.dots == 0 {
		return ""
	}
	styles := m.theme.Styles()
	active := m.carousel.ActiveDot()
	dots := make([]string, l.dots)
	for i := range dots {
		if i == active {
			dots[i] = styles.AccentText.Render("●")
		} else {
			dots[i] = styles.FaintText.Render("○")
		}
	}
	return strings.Repeat(" ", l.dotsX) + strings.Join(dots, " ")
}
