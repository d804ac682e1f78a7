package ui

import (
	"fmt"
	"strings"
	"time"
)

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("showcase", styles.Logo),
		m.playState(styles, bg),
	}

	if !m.snapshot.HasData() && m.snapshot.LastError == nil {
		parts = append(parts, bg.Render("Loading listings...", styles.MutedText))
		return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, "  "))
	}

	parts = append(parts, bg.Render(plural(m.carousel.State().Len(), "listing"), styles.Text))

	if total := m.carousel.TotalSlides(); total > 0 {
		slide := m.carousel.Index()
		if m.carousel.InWrap() {
			slide = 0
		}
		parts = append(parts,
			bg.Render("Slide", styles.FaintText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d/%d", slide+1, total), styles.Text))
	}

	if src := strings.TrimSpace(m.snapshot.Source); src != "" {
		parts = append(parts, bg.Render("Source", styles.FaintText)+bg.Space()+bg.Render(src, styles.AccentText))
	}

	if !m.snapshot.LastUpdated.IsZero() {
		age := humanizeDuration(time.Since(m.snapshot.LastUpdated))
		if age != "now" {
			age += " ago"
		}
		parts = append(parts, bg.Render("Updated "+age, styles.MutedText))
	}

	if err := m.snapshot.LastError; err != nil {
		label := "ERROR"
		if m.snapshot.IsStale() {
			label = "STALE"
		}
		parts = append(parts,
			bg.Render(label, styles.DangerText)+bg.Space()+
				bg.Render(truncateMiddle(err.Error(), 60), styles.WarningText))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, "  "))
}

// playState renders the auto-advance badge. A manual pause wins over hover.
func (m Model) playState(styles Styles, bg BgStyle) string {
	switch {
	case m.carousel.Pinned():
		return bg.Render("❚❚ PAUSED", styles.WarningText.Bold(true))
	case m.carousel.Hovered():
		return bg.Render("❚❚ HOLD", styles.MutedText)
	case m.carousel.TotalSlides() <= 1:
		return bg.Render("■ STILL", styles.FaintText)
	default:
		return bg.Render("▶ LIVE", styles.SuccessText)
	}
}
