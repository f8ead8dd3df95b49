package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/kardash/models"
)

const maxListedJobs = 10

func (m model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(m.headline())
	b.WriteString("\n\n")

	switch {
	case m.admin != nil:
		writeAdminOverview(&b, *m.admin)
	case m.freelancer != nil:
		writeFreelancerDashboard(&b, *m.freelancer)
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading dashboard...")
	}

	m.writeFooter(&b)
	return renderPage("KARDASH · DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"r: refresh │ n: notifications │ c: copy token │ l: log out │ q: quit")
}

func (m model) headline() string {
	name, role := "-", ""
	if m.user != nil {
		name, role = m.user.Name, string(m.user.Role)
	}

	line := fmt.Sprintf("%s (%s)", name, role)
	if m.unread > 0 {
		line += "   " + badgeStyle.Render(fmt.Sprintf("● %d unread", m.unread))
	}
	if m.loading && (m.freelancer != nil || m.admin != nil) {
		line += "  " + m.spinner.View()
	}
	return line
}

func (m model) writeFooter(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}
}

func writeFreelancerDashboard(b *strings.Builder, d models.FreelancerDashboard) {
	s := d.Stats
	b.WriteString(sectionStyle.Render("Stats"))
	b.WriteString("\n")
	fmt.Fprintf(b, "Jobs %d │ Active %d │ Completed %d │ Earnings %s │ Success %.0f%% │ Avg job %s\n\n",
		s.TotalJobs, s.ActiveJobs, s.CompletedJobs, money(s.TotalEarnings), s.SuccessRate*100, money(s.AverageJobValue))

	writeJobs(b, "Available jobs", d.AvailableJobs)
	b.WriteString("\n")
	writeJobs(b, "My jobs", d.MyJobs)
}

func writeAdminOverview(b *strings.Builder, a models.AdminOverview) {
	o := a.Overview
	b.WriteString(sectionStyle.Render("Overview"))
	b.WriteString("\n")
	fmt.Fprintf(b, "Jobs %d (%d open) │ Users %d │ Earnings %s │ This month %s │ Commission %.0f%%\n\n",
		o.TotalJobs, o.ActiveJobs, o.TotalUsers, money(o.TotalEarnings), money(o.MonthlyEarnings), o.CommissionRate*100)

	writeJobs(b, "Jobs", a.Jobs)
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Bot accounts"))
	b.WriteString("\n")
	if len(a.BotAccounts) == 0 {
		b.WriteString("-\n")
	}
	for _, bot := range a.BotAccounts {
		fmt.Fprintf(b, "#%-3d %-16s %-10s %-8s applied %d, success %.0f%%\n",
			bot.ID, bot.Name, bot.Platform, bot.Status, bot.JobsApplied, bot.SuccessRate)
	}

	active := 0
	for _, u := range a.Users {
		if u.IsActive {
			active++
		}
	}
	fmt.Fprintf(b, "\nUsers: %d registered, %d active\n", len(a.Users), active)
}

func writeJobs(b *strings.Builder, title string, jobs []models.Job) {
	b.WriteString(sectionStyle.Render(fmt.Sprintf("%s (%d)", title, len(jobs))))
	b.WriteString("\n")
	if len(jobs) == 0 {
		b.WriteString("-\n")
		return
	}
	for i, job := range jobs {
		if i == maxListedJobs {
			fmt.Fprintf(b, "... and %d more\n", len(jobs)-maxListedJobs)
			break
		}
		b.WriteString(jobLine(job))
		b.WriteString("\n")
	}
}
