package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmagro/tracao/internal/cli/formatter"
	"github.com/dmagro/tracao/internal/contract"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/spf13/cobra"
)

// watchModel is the live timer for an active deep-work session. The stopwatch
// shows time since the watch opened; the header shows time since the session
// actually started.
type watchModel struct {
	app       *App
	session   *domain.DeepWorkSession
	taskTitle string
	sw        stopwatch.Model
	err       error
	done      bool
}

func newWatchModel(app *App, session *domain.DeepWorkSession, taskTitle string) watchModel {
	return watchModel{
		app:       app,
		session:   session,
		taskTitle: taskTitle,
		sw:        stopwatch.NewWithInterval(time.Second),
	}
}

func (m watchModel) Init() tea.Cmd {
	return m.sw.Init()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "i":
			updated, err := m.app.DeepWork.RegisterInterruption(context.Background(), m.session.ID)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.session = updated
			return m, nil
		case "b":
			updated, err := m.app.DeepWork.RegisterBreak(context.Background(), m.session.ID)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.session = updated
			return m, nil
		case "s", "q", "ctrl+c":
			stopped, err := m.app.DeepWork.Stop(context.Background(), contract.StopDeepWorkRequest{
				SessionID: m.session.ID,
			})
			if err != nil {
				m.err = err
			} else {
				m.session = stopped
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.sw, cmd = m.sw.Update(msg)
	return m, cmd
}

func (m watchModel) View() string {
	if m.done || m.err != nil {
		return ""
	}

	elapsed := time.Since(m.session.StartedAt).Round(time.Second)
	header := formatter.Bold(m.taskTitle) + "\n" +
		formatter.SessionStatePill(m.session.State) + "\n\n"

	body := fmt.Sprintf("Decorrido:     %s\n", formatter.StyleGreen.Render(elapsed.String()))
	body += fmt.Sprintf("Nesta tela:    %s\n", m.sw.View())
	body += fmt.Sprintf("Alvo:          %s\n", formatter.FormatMinutes(m.session.TargetMinutes))
	body += fmt.Sprintf("Interrupções:  %d   Pausas: %d\n", m.session.InterruptionCount, m.session.BreakCount)
	body += "\n" + formatter.Dim("i interrupção · b pausa · s encerrar") + "\n"

	return formatter.RenderBox("Deep Work", header+body)
}

func newDeepWorkWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the active session with a live timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("watch needs an interactive terminal")
			}

			ctx := context.Background()
			session, err := app.DeepWork.GetActive(ctx)
			if err != nil {
				return fmt.Errorf("no active deep-work session")
			}
			task, err := app.Tasks.GetByID(ctx, session.TaskID)
			if err != nil {
				return err
			}

			model := newWatchModel(app, session, task.Title)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(watchModel); ok {
				if m.err != nil {
					return m.err
				}
				if m.session.Terminal() {
					fmt.Println(formatter.FormatSession(m.session, task.Title))
				}
			}
			return nil
		},
	}
}
