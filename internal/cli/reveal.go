package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/giftmatch/pkg/match"
)

// newRevealCmd creates the reveal command: a draw followed by an
// interactive pass-the-terminal ceremony where each participant sees
// only their own receiver.
func newRevealCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "reveal <group-file>",
		Short: "Draw an assignment and reveal it one participant at a time",
		Long: `Draw an assignment and reveal it at a shared terminal.

Participants take turns: the screen announces whose turn it is, they
press enter to see who they give to, press enter again to hide it, and
hand the keyboard to the next person. Nobody sees anyone else's match,
and nothing is written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, participants, err := loadParticipants(ctx, args[0])
			if err != nil {
				return err
			}

			assignments, err := match.Generate(participants, &match.Options{Seed: seed})
			if err != nil {
				return err
			}

			model := newRevealModel(assignments)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(revealModel); ok && !m.finished {
				printInfo("Reveal aborted after %d of %d participants", m.index, len(assignments))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	return cmd
}

// revealPhase is the state of the pass-the-terminal ceremony.
type revealPhase int

const (
	phaseHandoff revealPhase = iota // waiting for the named participant to take over
	phaseShowing                    // their receiver is on screen
	phaseDone                       // everyone has seen their match
)

// revealModel is the bubbletea model for the reveal ceremony.
type revealModel struct {
	assignments []match.Assignment
	index       int
	phase       revealPhase
	finished    bool
}

func newRevealModel(assignments []match.Assignment) revealModel {
	return revealModel{assignments: assignments}
}

func (m revealModel) Init() tea.Cmd {
	return nil
}

func (m revealModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter", " ":
		switch m.phase {
		case phaseHandoff:
			m.phase = phaseShowing
		case phaseShowing:
			m.index++
			if m.index >= len(m.assignments) {
				m.phase = phaseDone
				m.finished = true
			} else {
				m.phase = phaseHandoff
			}
		case phaseDone:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m revealModel) View() string {
	switch m.phase {
	case phaseShowing:
		a := m.assignments[m.index]
		return fmt.Sprintf("\n  %s\n\n  %s %s %s\n\n  %s\n",
			StyleTitle.Render(a.Giver+", this is for your eyes only:"),
			StyleValue.Render("you give to"),
			StyleDim.Render(iconArrow),
			StyleSuccess.Render(a.Receiver),
			StyleDim.Render("enter to hide and pass the keyboard on"),
		)
	case phaseDone:
		return fmt.Sprintf("\n  %s\n\n  %s\n",
			StyleSuccess.Render(iconSuccess+" Everyone has seen their match. Happy gifting!"),
			StyleDim.Render("enter or q to leave"),
		)
	default:
		a := m.assignments[m.index]
		return fmt.Sprintf("\n  %s\n\n  %s\n\n  %s\n",
			StyleTitle.Render(fmt.Sprintf("Participant %d of %d", m.index+1, len(m.assignments))),
			StyleValue.Render("Pass the keyboard to "+StyleHighlight.Render(a.Giver)+", then press enter."),
			StyleDim.Render("q to abort the ceremony"),
		)
	}
}
