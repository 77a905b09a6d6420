package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/alpaso-live/alpaso-cli/bridge"
	"github.com/alpaso-live/alpaso-cli/domain"
)

// runLiveView is the playback screen shared by watch and host: a status
// header, an event/chat log and a chat input line, fed by the bridge's
// callbacks. It returns whether the host ended the stream from inside the
// view.
func runLiveView(stream domain.Stream, role bridge.Role, displayName string) (bool, error) {
	app := tview.NewApplication()

	header := tview.NewTextView().SetDynamicColors(true)
	eventLog := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetScrollable(true).
		ScrollToEnd()
	input := tview.NewInputField().
		SetLabel(displayName + " ❯ ").
		SetFieldWidth(0).
		SetAcceptanceFunc(tview.InputFieldMaxLength(256))

	hints := "Esc leave"
	if role == bridge.RoleHost {
		hints = "Esc leave | ^E end stream | ^G camera | ^T mic | ^X switch camera"
	}
	footer := tview.NewTextView().SetText(" " + hints)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(eventLog, 0, 1, false).
		AddItem(input, 1, 0, true).
		AddItem(footer, 1, 0, false)

	app.SetRoot(flex, true).SetFocus(input)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	widget := bridge.NewCallWidget(log)
	br := bridge.New(widget, log)

	setHeader := func(count int, note string) {
		header.SetText(fmt.Sprintf(" [yellow]%s[-] | %s | %d watching %s",
			stream.Title, strings.ToUpper(string(stream.Status)), count, note))
	}
	setHeader(stream.CurrentParticipants, "(connecting...)")

	var hostEnded atomic.Bool

	handler := bridge.Handler{
		OnJoined: func() {
			app.QueueUpdateDraw(func() {
				setHeader(stream.CurrentParticipants, "")
				fmt.Fprintf(eventLog, "[green]Joined %s as %s.[-]\n", stream.Title, role)
			})
		},
		OnParticipantCount: func(count int) {
			app.QueueUpdateDraw(func() {
				setHeader(count, "")
			})
		},
		OnError: func(err error) {
			var serr *bridge.SessionError
			terminal := errors.As(err, &serr) && serr.PermissionDenied
			app.QueueUpdateDraw(func() {
				fmt.Fprintf(eventLog, "[red]%v[-]\n", err)
			})
			if terminal {
				app.Stop()
			}
		},
		OnEnded: func() {
			app.QueueUpdateDraw(func() {
				fmt.Fprintln(eventLog, "[yellow]The stream has ended.[-]")
			})
			app.Stop()
		},
		OnChat: func(sender, text string) {
			app.QueueUpdateDraw(func() {
				fmt.Fprintf(eventLog, "[blue]%s[-]: %s\n", sender, text)
			})
		},
	}

	input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		text := strings.TrimSpace(input.GetText())
		if text == "" {
			return
		}
		if err := br.SendChat(text); err != nil {
			fmt.Fprintf(eventLog, "[red]chat: %v[-]\n", err)
			return
		}
		fmt.Fprintf(eventLog, "[blue]%s[-]: %s\n", displayName, text)
		input.SetText("")
	})

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			app.Stop()
			return nil
		case tcell.KeyCtrlE:
			if role == bridge.RoleHost {
				if err := br.EndStream(); err == nil {
					hostEnded.Store(true)
				}
				app.Stop()
				return nil
			}
		case tcell.KeyCtrlG:
			if role == bridge.RoleHost {
				br.SetCamera(!br.CameraOn())
				return nil
			}
		case tcell.KeyCtrlT:
			if role == bridge.RoleHost {
				br.SetMicrophone(!br.MicOn())
				return nil
			}
		case tcell.KeyCtrlX:
			if role == bridge.RoleHost {
				br.SwitchCamera()
				return nil
			}
		}
		return event
	})

	cfg := bridge.Config{
		StreamID:    stream.ID,
		Role:        role,
		RoomURL:     stream.RoomURL,
		Token:       stream.Token,
		DisplayName: displayName,
	}

	// Initialized from a goroutine so a synchronous failure still reaches
	// the event log through OnError once the UI loop is running.
	go func() {
		if err := br.Initialize(ctx, cfg, handler); err != nil {
			log.Debug().Err(err).Msg("playback initialization failed")
		}
	}()

	if err := app.Run(); err != nil {
		br.Leave()
		return hostEnded.Load(), err
	}
	br.Leave()
	return hostEnded.Load(), nil
}

// viewerName resolves what to call this user inside the live view.
func viewerName(ctx context.Context) string {
	if !tokens.IsAuthenticated() {
		return "guest"
	}
	user, err := api.Profile(ctx)
	if err != nil || user.Name == "" {
		return "guest"
	}
	return user.Name
}
