package main

import (
	"fmt"
	"strings"

	"github.com/Atgsasakazh5/bulletinboard-app/internal/ui"
)

func (m model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	var header, subHeader, body, footer string

	header = ui.HeaderStyle.Render(" CORKBOARD ") + "\n"

	switch m.state {
	case stateSetup:
		subHeader = ui.SubHeaderStyle.Render("First-time Setup") + "\n"

		content := ui.InfoKeyStyle.Render("Welcome.") + " Enter the address of the bulletin board server.\n\n"
		content += ui.InfoKeyStyle.Render("Server URL:") + "\n" + m.serverInput.View()

		body = ui.CardStyle.Render(content)
		footer = ui.FooterStyle.Render("▸ Enter: save • Ctrl+C: exit")

	case stateFeed:
		body = m.feedView()
		footer = ui.FooterStyle.Render(m.feedFooter())
		subHeader = ui.SubHeaderStyle.Render(m.chrome()) + "\n"

	case stateLogin:
		subHeader = ui.SubHeaderStyle.Render("Log In") + "\n"

		content := ui.InfoKeyStyle.Render("Username:") + "\n" + m.userInput.View() + "\n\n"
		content += ui.InfoKeyStyle.Render("Password:") + "\n" + m.passInput.View()

		body = ui.CardStyle.Render(content)
		footer = ui.FooterStyle.Render("▸ Enter: log in • Tab: next field • Esc: back")

	case stateSignup:
		subHeader = ui.SubHeaderStyle.Render("Sign Up") + "\n"

		content := ui.InfoKeyStyle.Render("Username:") + "\n" + m.userInput.View() + "\n\n"
		content += ui.InfoKeyStyle.Render("Password:") + "\n" + m.passInput.View()

		body = ui.CardStyle.Render(content)
		footer = ui.FooterStyle.Render("▸ Enter: sign up • Tab: next field • Esc: back")

	case stateCompose:
		subHeader = ui.SubHeaderStyle.Render("New Post") + "\n"

		author := "?"
		if id, ok := m.env.store.Get(); ok {
			author = id.Username
		}
		content := ui.InfoKeyStyle.Render("Author:") + ui.InfoValueStyle.Render(author) + "\n\n"
		content += m.compose.View()

		body = ui.CardStyle.Render(content)
		footer = ui.FooterStyle.Render("▸ Ctrl+S: post • Esc: back")

	case stateEdit:
		subHeader = ui.SubHeaderStyle.Render("Edit Post") + "\n"

		content := ui.InfoKeyStyle.Render("Author:") + "\n" + m.editAuthor.View() + "\n\n"
		content += ui.InfoKeyStyle.Render("Content:") + "\n" + m.editContent.View()

		body = ui.ModalStyle.Render(content)
		footer = ui.FooterStyle.Render("▸ Ctrl+S: save • Tab: switch field • Esc: cancel")

	case stateConfirm:
		subHeader = ui.SubHeaderStyle.Render("Delete Post") + "\n"

		content := "Really delete this post?\n\n"
		content += ui.MutedStyle.Render("This cannot be undone.")

		body = ui.ModalStyle.Render(content)
		footer = ui.FooterStyle.Render("▸ y: delete • n: keep")
	}

	status := ""
	if m.pending {
		status = "\n" + ui.MutedStyle.Render("  working...")
	} else if m.errText != "" {
		status = "\n" + ui.ErrorTextStyle.Render("✘ "+m.errText)
	} else if m.notice != "" {
		status = "\n" + ui.NoticeStyle.Render("✓ "+m.notice)
	}

	return fmt.Sprintf("%s%s%s%s\n%s", header, subHeader, body, status, footer)
}

// chrome is the identity-dependent line under the header, recomputed on
// every render.
func (m model) chrome() string {
	if id, ok := m.env.store.Get(); ok {
		return fmt.Sprintf("Logged in as %s", id.Username)
	}
	return "Browsing as guest"
}

func (m model) feedView() string {
	if m.view.Placeholder != "" {
		if m.view.Failed {
			return ui.CardStyle.Render(ui.ErrorTextStyle.Render(m.view.Placeholder))
		}
		return ui.CardStyle.Render(ui.MutedStyle.Render(m.view.Placeholder))
	}

	var b strings.Builder
	for i, item := range m.view.Items {
		line := ui.PostAuthorStyle.Render(item.Author) + "  " +
			ui.PostMetaStyle.Render(item.When) + "\n" +
			item.Content
		if item.CanMutate {
			line += "\n" + ui.MutedStyle.Render("e: edit • d: delete")
		}

		style := ui.PostStyle
		if i == m.cursor {
			style = ui.SelectedPostStyle
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m model) feedFooter() string {
	if _, ok := m.env.store.Get(); ok {
		return "▸ n: new post • e: edit • d: delete • r: refresh • o: log out • q: quit"
	}
	return "▸ l: log in • s: sign up • r: refresh • q: quit"
}
