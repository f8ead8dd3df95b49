package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/kardash/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys + " │ ctrl+c: quit"))
	} else {
		b.WriteString(helpStyle.Render("ctrl+c: quit"))
	}

	return appStyle.Render(b.String())
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func jobLine(job models.Job) string {
	line := fmt.Sprintf("#%-3d %-40s %8s  %-10s %s",
		job.ID, fitText(job.Title, 40), "$"+string(job.Budget), valueOrDash(job.Platform), job.Status)
	if job.IsUrgent {
		line += " " + urgentStyle.Render("URGENT")
	}
	return line
}
