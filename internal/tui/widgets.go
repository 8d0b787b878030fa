package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/jobfocus/internal/jobs"
)

// RenderSkillBadge renders one skill as an inline badge.
func RenderSkillBadge(s jobs.Skill, plain bool) string {
	text := IconSkill + " " + s.Name
	if plain {
		return "[" + text + "]"
	}
	return BadgeStyle.Render(text)
}

// renderSkillBadges lays badges out left to right, wrapping at width.
func renderSkillBadges(skills []jobs.Skill, width int, opts RenderOptions) string {
	if len(skills) == 0 {
		return opts.style(SubtleStyle).Render("No skills listed")
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, s := range skills {
		badge := RenderSkillBadge(s, opts.Plain)
		bw := lipgloss.Width(badge)
		if len(row) > 0 && rowWidth+1+bw > width {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			rowWidth++
		}
		row = append(row, badge)
		rowWidth += bw
	}
	rows = append(rows, strings.Join(row, " "))
	return strings.Join(rows, "\n")
}

// RenderSimilarJobCard renders the summary card of a similar job. The
// selected card gets a highlighted border (or a marker in plain mode).
func RenderSimilarJobCard(j jobs.SimilarJob, selected bool, width int, plain bool) string {
	if width <= 0 {
		width = defaultWidth
	}
	inner := width - 2*borderPadding

	cardStyle := func(s lipgloss.Style) lipgloss.Style {
		if plain {
			return lipgloss.NewStyle()
		}
		return s
	}

	var b strings.Builder
	b.WriteString(cardStyle(LabelStyle).Render("Logo: "))
	b.WriteString(cardStyle(LinkStyle).Render(j.CompanyLogoURL))
	b.WriteString("\n")
	b.WriteString(cardStyle(TitleStyle).Render(j.Title))
	b.WriteString("  ")
	b.WriteString(renderRating(j.Rating, plain))
	b.WriteString("\n")
	b.WriteString(cardStyle(HeaderStyle).Render(headingCaser.String(sectionDescription)))
	b.WriteString("\n")
	b.WriteString(wrap(j.Description, inner))
	b.WriteString("\n")
	b.WriteString(cardStyle(ValueStyle).Render(IconLocation + " " + j.Location))
	b.WriteString("   ")
	b.WriteString(cardStyle(ValueStyle).Render(IconBriefing + " " + j.EmploymentType))

	if plain {
		marker := "  "
		if selected {
			marker = "> "
		}
		lines := strings.Split(b.String(), "\n")
		for i := range lines {
			lines[i] = marker + lines[i]
		}
		return strings.Join(lines, "\n") + "\n"
	}

	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	return style.Width(width - borderPadding).Render(b.String())
}
