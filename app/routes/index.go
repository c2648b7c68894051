package routes

import (
	"context"
	"strings"

	"github.com/vango-go/vango"
	. "github.com/vango-go/vango/el"
	"github.com/vango-go/vango/setup"

	"care_chat/internal/chat"
	"care_chat/internal/profile"
	"care_chat/internal/services/assistant"
)

type ChatRootProps struct {
	Profile profile.Profile
}

type themePalette struct {
	AppRoot         string
	Header          string
	HeaderTitle     string
	HeaderMeta      string
	ThemeToggle     string
	UserBubble      string
	BotBubble       string
	WarningBubble   string
	EmergencyBubble string
	TypingText      string
	TimeText        string
	QuickReplyChip  string
	Composer        string
	Input           string
	SendButton      string
}

func IndexPage(ctx vango.Ctx) *vango.VNode {
	dependencies := getDeps()
	return Div(ChatRoot(ChatRootProps{Profile: dependencies.Profile}))
}

func ChatRoot(props ChatRootProps) vango.Component {
	return vango.Setup(props, func(s vango.SetupCtx[ChatRootProps]) vango.RenderFn {
		dependencies := getDeps()
		conversation := assistant.NewConversation(dependencies.Assistant, props.Profile)

		messages := setup.Signal(&s, conversation.Messages())
		typing := setup.Signal(&s, false)
		inputText := setup.Signal(&s, "")
		themeMode := setup.Signal(&s, "dark")

		replyAction := setup.Action(&s,
			func(workCtx context.Context, _ struct{}) (chat.Message, error) {
				return conversation.Resolve(workCtx), nil
			},
			vango.DropWhileRunning(),
			vango.ActionOnSuccess(func(any) {
				messages.Set(conversation.Messages())
				typing.Set(conversation.Typing())
			}),
			vango.ActionOnError(func(error) {
				messages.Set(conversation.Messages())
				typing.Set(conversation.Typing())
			}),
		)

		onSend := func(text string) {
			if !conversation.Push(text) {
				return
			}
			inputText.Set("")
			messages.Set(conversation.Messages())
			typing.Set(true)
			replyAction.Run(struct{}{})
		}

		onToggleTheme := func() {
			if themeMode.Get() == "dark" {
				themeMode.Set("light")
				return
			}
			themeMode.Set("dark")
		}

		return func() *vango.VNode {
			messageList := messages.Get()
			pending := typing.Get()
			palette := paletteFor(themeMode.Get())
			prof := props.Profile
			themeLabel := "Dark"
			if themeMode.Get() == "dark" {
				themeLabel = "Light"
			}

			var typingNode *vango.VNode
			if pending {
				typingNode = Div(Class("flex justify-start"),
					Div(Class("rounded-lg px-4 py-3 border "+palette.BotBubble),
						Div(Class("text-sm "+palette.TypingText), Text("Typing...")),
					),
				)
			}

			return Div(Class("h-screen "+palette.AppRoot),
				Div(Class("h-full flex flex-col max-w-3xl mx-auto"),
					Div(Class("h-16 px-4 flex items-center justify-between gap-3 "+palette.Header),
						Div(
							Div(Class("text-sm font-semibold "+palette.HeaderTitle), Text("Health Assistant")),
							Div(Class("text-xs "+palette.HeaderMeta),
								Text(prof.DisplayName()+" · "+prof.DomainSummary()+" · "+headerLanguage(prof)),
							),
						),
						Button(
							Class("rounded-md px-3 py-1.5 text-sm border transition-colors "+palette.ThemeToggle),
							OnClick(onToggleTheme),
							Text(themeLabel),
						),
					),
					Div(Class("flex-1 overflow-y-auto p-4 space-y-4"),
						RangeKeyed(messageList,
							func(message chat.Message) any { return message.ID },
							func(message chat.Message) *vango.VNode {
								return renderBubble(message, palette, pending, onSend)
							},
						),
						typingNode,
					),
					Div(Class("p-4 "+palette.Composer),
						Div(Class("flex items-end gap-2"),
							Textarea(
								Class("flex-1 min-h-16 max-h-40 rounded-md px-3 py-2 text-sm resize-y "+palette.Input),
								Placeholder("Describe how you're feeling..."),
								Value(inputText.Get()),
								OnInput(func(value string) {
									inputText.Set(value)
								}),
							),
							Button(
								Class("rounded-md px-4 py-2 text-sm font-semibold disabled:opacity-50 "+palette.SendButton),
								OnClick(func() { onSend(inputText.Get()) }),
								Disabled(pending || strings.TrimSpace(inputText.Get()) == ""),
								Text("Send"),
							),
						),
					),
				),
			)
		}
	})
}

func renderBubble(message chat.Message, palette themePalette, pending bool, onSend func(string)) *vango.VNode {
	containerClass := "flex"
	bubbleClass := "rounded-lg px-4 py-3 max-w-xl whitespace-pre-wrap"
	icon := ""

	if message.Sender == chat.SenderUser {
		containerClass += " justify-end"
		bubbleClass += " " + palette.UserBubble
	} else {
		containerClass += " justify-start"
		bubbleClass += " border"
		switch message.Type {
		case chat.TypeEmergency:
			bubbleClass += " " + palette.EmergencyBubble
			icon = "🚨"
		case chat.TypeWarning:
			bubbleClass += " " + palette.WarningBubble
			icon = "💛"
		default:
			bubbleClass += " " + palette.BotBubble
			icon = "🤖"
		}
	}

	var iconNode *vango.VNode
	if icon != "" {
		iconNode = Span(Class("mr-2"), Attr("aria-hidden", "true"), Text(icon))
	}

	var chipsNode *vango.VNode
	if len(message.QuickReplies) > 0 {
		chipsNode = Div(Class("mt-3 flex flex-wrap gap-2"),
			RangeKeyed(message.QuickReplies,
				func(label string) any { return label },
				func(label string) *vango.VNode {
					return Button(
						Class("rounded-full px-3 py-1 text-xs border transition-colors "+palette.QuickReplyChip),
						OnClick(func() { onSend(label) }),
						Disabled(pending),
						Text(label),
					)
				},
			),
		)
	}

	return Div(Class(containerClass),
		Div(Class(bubbleClass),
			Div(Class("text-sm"), iconNode, Text(message.Text)),
			chipsNode,
			Div(Class("text-[10px] mt-2 "+palette.TimeText),
				Attr("aria-hidden", "true"),
				Text(message.CreatedAt.Format("15:04")),
			),
		),
	)
}

func headerLanguage(prof profile.Profile) string {
	if trimmed := strings.TrimSpace(prof.Language); trimmed != "" {
		return strings.ToUpper(trimmed)
	}
	return "EN"
}

func paletteFor(mode string) themePalette {
	if mode == "light" {
		return themePalette{
			AppRoot:         "bg-slate-100 text-slate-900",
			Header:          "border-b border-slate-300 bg-white",
			HeaderTitle:     "text-slate-800",
			HeaderMeta:      "text-slate-500",
			ThemeToggle:     "border-slate-300 text-slate-700 hover:bg-slate-100",
			UserBubble:      "bg-blue-600 text-white",
			BotBubble:       "bg-white border-slate-300 text-slate-900",
			WarningBubble:   "bg-amber-50 border-amber-400 text-amber-900",
			EmergencyBubble: "bg-red-50 border-red-400 text-red-900",
			TypingText:      "text-slate-600",
			TimeText:        "text-slate-500",
			QuickReplyChip:  "bg-white border-slate-300 text-slate-700 hover:bg-slate-100",
			Composer:        "border-t border-slate-300 bg-white",
			Input:           "bg-white border border-slate-300 text-slate-900 placeholder:text-slate-500",
			SendButton:      "bg-blue-600 text-white hover:bg-blue-700",
		}
	}

	return themePalette{
		AppRoot:         "bg-[#0b1320] text-white",
		Header:          "border-b border-white/10 bg-[#0f1a2b]",
		HeaderTitle:     "text-white/90",
		HeaderMeta:      "text-white/60",
		ThemeToggle:     "border-white/30 text-white hover:bg-white/10",
		UserBubble:      "bg-[#2457d6] text-white",
		BotBubble:       "bg-[#142235] border-white/10 text-white",
		WarningBubble:   "bg-amber-400/10 border-amber-300/50 text-amber-100",
		EmergencyBubble: "bg-red-400/10 border-red-300/50 text-red-100",
		TypingText:      "text-white/70",
		TimeText:        "text-white/50",
		QuickReplyChip:  "bg-[#15243a] border-white/20 text-white/80 hover:bg-[#1b2d47]",
		Composer:        "border-t border-white/10 bg-[#0f1a2b]",
		Input:           "bg-[#15243a] border border-white/20 text-white placeholder:text-white/60",
		SendButton:      "bg-[#2457d6] text-white hover:bg-[#2e63e0]",
	}
}
