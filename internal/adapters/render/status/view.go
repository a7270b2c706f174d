package status

import (
	"fmt"
	"math"
	"time"

	"github.com/bnema/chatline/internal/application"
	"github.com/bnema/chatline/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now      time.Time
	Server   string
	Channel  string
	Backend  string
	Username string
}

func renderView(status application.SessionStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Chat Session"),
		s.header.Render(fmt.Sprintf("server: %s", valueOrNA(opts.Server))),
	}

	lines = append(lines, s.section.Render(renderCredential(status, opts, s)))

	if opts.Channel != "" {
		lines = append(lines, s.section.Render(lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.key.Render("channel:"),
			" ",
			s.detail.Render(opts.Channel),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCredential(status application.SessionStatus, opts RenderOptions, s styles) string {
	parts := []string{authLine(status, s)}

	if status.Profile != nil {
		parts = append(parts, s.user.Render(userTitle(status.Profile.User)))
		parts = append(parts, s.meta.Render(fmt.Sprintf("signed in %s", formatAt(status.Profile.SavedAt, opts.Now))))
	} else if !status.TokenStored {
		parts = append(parts, s.empty.Render("Not logged in. Run `chatline login`."))
	}

	if status.Token != nil {
		parts = append(parts, expiryLine(*status.Token, opts.Now, s))
	}

	parts = append(parts, s.detail.Render(fmt.Sprintf("revalidate: %s", valueOrNA(string(status.Policy)))))
	if opts.Backend != "" {
		parts = append(parts, s.detail.Render(fmt.Sprintf("storage: %s", opts.Backend)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func authLine(status application.SessionStatus, s styles) string {
	label := s.key.Render("authenticated:")
	switch {
	case status.Authenticated:
		return label + " " + s.ok.Render("yes")
	case status.TokenStored:
		return label + " " + s.warning.Render("no (stored token expired)")
	default:
		return label + " " + s.warning.Render("no")
	}
}

func userTitle(user domain.User) string {
	if user.ID == "" {
		return user.Username
	}
	return fmt.Sprintf("%s (%s)", user.Username, user.ID)
}

func expiryLine(info domain.TokenInfo, now time.Time, s styles) string {
	label := s.key.Render("token:")
	if info.ExpiresAt.IsZero() {
		return label + " " + s.detail.Render("no expiry")
	}

	expiryStyle := lipgloss.NewStyle().Foreground(expiryColor(info.ExpiresAt, now))
	line := label + " " + expiryStyle.Render(formatExpiryRelative(info.ExpiresAt, now))
	if !now.IsZero() && info.Expired(now) {
		line += " " + s.warning.Render("[expired]")
	}

	return line
}

// MessageLine formats one inbound payload for the chat stream.
func MessageLine(payload string, at time.Time) string {
	s := newStyles()
	if at.IsZero() {
		return s.message.Render(payload)
	}

	return s.meta.Render(at.Format("15:04:05")) + " " + s.message.Render(payload)
}

func valueOrNA(value string) string {
	if value == "" {
		return "n/a"
	}
	return value
}

func formatAt(at, now time.Time) string {
	if at.IsZero() {
		return "at an unknown time"
	}
	if now.IsZero() {
		return "at " + at.Format(time.RFC3339)
	}

	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := at.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return "at " + at.Format("15:04")
	}

	return "at " + at.Format("15:04 on 02 Jan")
}

func formatExpiryRelative(expiresAt, now time.Time) string {
	if now.IsZero() {
		return "expires " + expiresAt.Format(time.RFC3339)
	}

	if !now.Before(expiresAt) {
		return "expired " + expiresAt.Format("15:04 on 02 Jan")
	}

	remaining := expiresAt.Sub(now)
	if remaining < 24*time.Hour {
		hours := int(math.Ceil(remaining.Hours()))
		if hours < 1 {
			hours = 1
		}
		suffix := "hours"
		if hours == 1 {
			suffix = "hour"
		}
		return fmt.Sprintf("expires in %d %s (%s)", hours, suffix, expiresAt.Format("15:04"))
	}

	days := int(math.Ceil(remaining.Hours() / 24))
	suffix := "days"
	if days == 1 {
		suffix = "day"
	}

	return fmt.Sprintf("expires in %d %s (%s)", days, suffix, expiresAt.Format("15:04 on 02 Jan"))
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp from faded 240 to bright 255.
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}

// expiryColor brightens as the token approaches expiry within the last day.
func expiryColor(expiresAt, now time.Time) lipgloss.Color {
	if now.IsZero() || expiresAt.Before(now) {
		return lipgloss.Color("255")
	}

	window := 24 * time.Hour
	inverted := window.Seconds() - expiresAt.Sub(now).Seconds()
	return interpolateColor(inverted, 0, window.Seconds())
}
