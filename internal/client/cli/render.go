package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/userconsole/internal/client/router"
	"github.com/dmitrijs2005/userconsole/internal/client/screens"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderSession draws the login form. The password is masked.
func renderSession(v screens.SessionView) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Login"))
	b.WriteString("\n")
	b.WriteString("  Username: " + v.Username + "\n")
	b.WriteString("  Password: " + strings.Repeat("*", len(v.Password)) + "\n")
	b.WriteString(mutedStyle.Render("  Forgot password? " + router.PathForgotPassword + "   Sign up: " + router.PathSignup))
	if v.Error != "" {
		b.WriteString("\n" + errorStyle.Render(v.Error))
	}
	return b.String()
}

// renderManager draws the user table, the open modal if any, and the
// Error State below them.
func renderManager(v screens.ManagerView) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("User Management"))
	b.WriteString("\n")

	rows := make([][]string, 0, len(v.Users))
	for _, u := range v.Users {
		rows = append(rows, []string{u.ID.String(), u.Name, u.Email, u.Phone})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Email", "Phone").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	b.WriteString(t.String())

	if v.Busy {
		b.WriteString("\n" + mutedStyle.Render("Loading..."))
	}
	if v.ModalVisible {
		b.WriteString("\n" + renderModal(v))
	}
	if v.Error != "" {
		b.WriteString("\n" + errorStyle.Render(v.Error))
	}
	return b.String()
}

func renderModal(v screens.ManagerView) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Title()))
	for _, f := range []string{"name", "email", "phone"} {
		b.WriteString("\n  " + f + ": " + v.Draft.Get(f))
	}
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Render(b.String())
}
