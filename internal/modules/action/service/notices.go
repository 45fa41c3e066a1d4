package service

import (
	"fmt"

	"github.com/reshetovitsme/groupwatch/internal/modules/action/domain"
	lifecycleDomain "github.com/reshetovitsme/groupwatch/internal/modules/lifecycle/domain"
)

const supergroupGuideURL = "https://te.legra.ph/How-to-Convert-a-Group-to-a-Supergroup-01-02"

func (e *Executor) supportButton() domain.Button {
	return domain.Button{Text: "Support", URL: e.opts.SupportURL}
}

func (e *Executor) rejectNotice(chatID int64, botUsername string) domain.Notice {
	text := fmt.Sprintf("This chat (%d) is not a supergroup yet.\n"+
		"<b>⚠️ Please convert this chat to a supergroup and add me as admin.</b>\n\n"+
		"If you don't know how to convert, use this guide:\n"+
		"🔗 %s\n\n"+
		"If you have any questions, join our support group:", chatID, supergroupGuideURL)

	var buttons []domain.Button
	if botUsername != "" {
		buttons = append(buttons, domain.Button{
			Text: "➕ Add me to your group",
			URL:  fmt.Sprintf("https://t.me/%s?startgroup=true", botUsername),
		})
	}
	buttons = append(buttons, e.supportButton())
	return domain.Notice{Text: text, Buttons: buttons}
}

func (e *Executor) tooSmallNotice(memberCount int) domain.Notice {
	text := fmt.Sprintf("⚠️ This group has too few members (%d).\n\n"+
		"To prevent spam and ensure proper functionality, "+
		"this bot only works in groups with at least %d members.\n"+
		"Please grow your community and add me again later.\n"+
		"If you have any questions, join our support group:", memberCount, e.opts.MinGroupMembers)
	return domain.Notice{Text: text, Buttons: []domain.Button{e.supportButton()}}
}

func videoChatNotice(kind lifecycleDomain.LifecycleKind) domain.Notice {
	if kind == lifecycleDomain.LifecycleKindVideoChatStarted {
		return domain.Notice{Text: "Video chat started!\nuse /play song name to play a song"}
	}
	return domain.Notice{Text: "Video chat ended!\nall queues cleared"}
}
