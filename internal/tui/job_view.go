package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rshade/jobfocus/internal/jobs"
	"github.com/rshade/jobfocus/internal/tui/detail"
)

// Failure view copy.
const (
	FailureImageURL    = "https://assets.ccbp.in/frontend/react-js/failure-img.png"
	FailureHeading     = "Oops! Something Went Wrong"
	FailureSubheading  = "We cannot seem to find the page you are looking for"
	RetryActionLabel   = "[r] Retry"
	appTitle           = "jobfocus"
	appSubtitle        = "Job Details"
	sectionDescription = "Description"
	sectionSkills      = "Skills"
	sectionLife        = "Life at Company"
	sectionSimilar     = "Similar Jobs"
	visitLabel         = "Visit"
)

//nolint:gochecknoglobals // Caser is stateless for String calls and reused.
var headingCaser = cases.Upper(language.English)

// RenderOptions controls RenderJobDetails.
type RenderOptions struct {
	// Width is the total width available; zero selects the default.
	Width int
	// Spinner is the current spinner frame shown while loading.
	Spinner string
	// Selected is the highlighted similar job index, or -1.
	Selected int
	// Plain disables all ANSI styling and borders.
	Plain bool
	// Interactive offers the retry action on the failure view. One-shot
	// output leaves it out since nothing can act on it.
	Interactive bool
}

// DefaultRenderOptions returns options for an unselected, styled view.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Width: defaultWidth, Selected: -1}
}

func (o RenderOptions) width() int {
	if o.Width <= 0 {
		return defaultWidth
	}
	if o.Width < minWidth {
		return minWidth
	}
	return o.Width
}

// style returns s, or an empty style in plain mode.
func (o RenderOptions) style(s lipgloss.Style) lipgloss.Style {
	if o.Plain {
		return lipgloss.NewStyle()
	}
	return s
}

// RenderJobDetails is the status-driven renderer: it maps a snapshot to the
// view for its status. It reads the snapshot only.
func RenderJobDetails(snap detail.Snapshot, opts RenderOptions) string {
	switch snap.Status {
	case detail.StatusInitial:
		return ""
	case detail.StatusInProgress:
		if opts.Plain {
			return loadingMessage
		}
		return RenderLoadingIndicator(opts.Spinner)
	case detail.StatusFailure:
		return renderFailureView(opts)
	case detail.StatusSuccess:
		if snap.Details == nil {
			return renderFailureView(opts)
		}
		return renderSuccessView(*snap.Details, opts)
	default:
		return ""
	}
}

// RenderAppHeader renders the top bar shown on every screen.
func RenderAppHeader(width int, plain bool) string {
	text := appTitle + " · " + appSubtitle
	if plain {
		return text
	}
	if width <= 0 {
		width = defaultWidth
	}
	return AppHeaderStyle.Width(width).Render(text)
}

func renderFailureView(opts RenderOptions) string {
	lines := []string{
		opts.style(CriticalStyle).Render(IconFailure) + " " +
			opts.style(SubtleStyle).Render("failure view: "+FailureImageURL),
		"",
		opts.style(TitleStyle).Render(FailureHeading),
		opts.style(LabelStyle).Render(FailureSubheading),
	}
	if opts.Interactive {
		lines = append(lines, "", opts.style(BadgeStyle).Render(RetryActionLabel))
	}
	return strings.Join(lines, "\n")
}

func renderSuccessView(d jobs.Details, opts RenderOptions) string {
	w := opts.width()
	var b strings.Builder

	b.WriteString(renderJobHeader(d.Job, opts))
	b.WriteString("\n")
	b.WriteString(opts.style(RuleStyle).Render(strings.Repeat("─", w-borderPadding)))
	b.WriteString("\n")

	b.WriteString(renderSectionHeading(sectionDescription, opts))
	b.WriteString("  ")
	b.WriteString(opts.style(LinkStyle).Render(visitLabel+" "+IconExternal) + " ")
	b.WriteString(opts.style(LabelStyle).Render(d.Job.CompanyWebsiteURL))
	b.WriteString("\n")
	b.WriteString(wrap(d.Job.Description, w-borderPadding))
	b.WriteString("\n\n")

	b.WriteString(renderSectionHeading(sectionSkills, opts))
	b.WriteString("\n")
	b.WriteString(renderSkillBadges(d.Job.Skills, w-borderPadding, opts))
	b.WriteString("\n\n")

	b.WriteString(renderSectionHeading(sectionLife, opts))
	b.WriteString("\n")
	b.WriteString(wrap(d.Job.LifeAtCompany.Description, w-borderPadding))
	b.WriteString("\n")
	b.WriteString(opts.style(LabelStyle).Render("Image: "))
	b.WriteString(opts.style(LinkStyle).Render(d.Job.LifeAtCompany.ImageURL))

	main := b.String()
	if !opts.Plain {
		main = BoxStyle.Width(w - borderPadding).Render(main)
	}

	sections := []string{main, "", renderSectionHeading(sectionSimilar, opts)}
	if len(d.SimilarJobs) == 0 {
		sections = append(sections, opts.style(SubtleStyle).Render("No similar jobs"))
	}
	for i, sj := range d.SimilarJobs {
		sections = append(sections, RenderSimilarJobCard(sj, i == opts.Selected, w, opts.Plain))
	}
	return strings.Join(sections, "\n")
}

func renderJobHeader(j jobs.JobDetails, opts RenderOptions) string {
	var b strings.Builder
	b.WriteString(opts.style(LabelStyle).Render("Logo: "))
	b.WriteString(opts.style(LinkStyle).Render(j.CompanyLogoURL))
	b.WriteString("\n")
	b.WriteString(opts.style(TitleStyle).Render(j.Title))
	b.WriteString("\n")
	b.WriteString(renderRating(j.Rating, opts.Plain))
	b.WriteString("\n")

	meta := opts.style(ValueStyle).Render(IconLocation+" "+j.Location) + "   " +
		opts.style(ValueStyle).Render(IconBriefing+" "+j.EmploymentType)
	b.WriteString(meta)
	b.WriteString("   ")
	b.WriteString(opts.style(HeaderStyle).Render(j.PackagePerAnnum))
	return b.String()
}

func renderSectionHeading(title string, opts RenderOptions) string {
	return opts.style(HeaderStyle).Render(headingCaser.String(title))
}

// FormatRating renders a rating without trailing zeros.
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func renderRating(r float64, plain bool) string {
	s := IconStar + " " + FormatRating(r)
	if plain {
		return s
	}
	return RatingStyle.Render(s)
}

// wrap breaks text into lines no wider than width, on word boundaries.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return text
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
