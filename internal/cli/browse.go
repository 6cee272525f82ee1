package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilings/pkg/pipeline"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		strategy    string
		separations bool
		onlyMax     bool
	)
	cmd := &cobra.Command{
		Use:   "browse FILE",
		Short: "Page through the children of a rule",
		Long: `Browse applies a strategy and opens an interactive pager over the
resulting tilings, starting with the parent. With --separations it pages
through every distinct single separation instead.`,
		Example: `  tilings browse tiling.json --strategy factor
  tilings browse tiling.json --separations`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := readTiling(args[0])
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			var model BrowseModel
			if separations {
				tilings, _, err := runner.Separations(ctx, t, onlyMax, false)
				if err != nil {
					return err
				}
				model = NewBrowseModel("All separations", t, tilings, "separation")
			} else {
				res, err := runner.Apply(ctx, t, pipeline.Options{
					Strategy:  strategy,
					MaxPasses: c.Config.Separation.MaxPasses,
					Length:    c.Config.Inferral.Length,
				})
				if err != nil {
					return err
				}
				if !res.Applied() {
					printWarning("%s does not apply to this tiling", strategy)
					return nil
				}
				model = NewBrowseModel(res.Rule.FormalStep, t, res.Rule.Children, "child")
			}
			_, err = tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", pipeline.StrategyFactor, "strategy whose children to browse")
	cmd.Flags().BoolVar(&separations, "separations", false, "browse every single separation")
	cmd.Flags().BoolVar(&onlyMax, "only-max", true, "with --separations, only use the finest orders")
	return cmd
}

// =============================================================================
// BrowseModel - Interactive tiling pager
// =============================================================================

var (
	browseTabStyle    = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	browseActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
)

// BrowseModel is the bubbletea model paging through a parent tiling and the
// tilings derived from it. Page 0 is the parent.
type BrowseModel struct {
	Title  string
	Pages  []*tiling.Tiling
	Names  []string
	Cursor int
}

// NewBrowseModel creates a pager over parent followed by children, each
// named "<noun> i".
func NewBrowseModel(title string, parent *tiling.Tiling, children []*tiling.Tiling, noun string) BrowseModel {
	m := BrowseModel{
		Title: title,
		Pages: append([]*tiling.Tiling{parent}, children...),
		Names: []string{"parent"},
	}
	for i := range children {
		m.Names = append(m.Names, fmt.Sprintf("%s %d", noun, i))
	}
	return m
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "up", "k", "shift+tab":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l", "down", "j", "tab":
			if m.Cursor < len(m.Pages)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Pages) - 1
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ page  g/G first/last  q quit"))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.Names))
	for i, name := range m.Names {
		if i == m.Cursor {
			tabs[i] = browseActiveStyle.Render(name)
		} else {
			tabs[i] = browseTabStyle.Render(name)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if len(m.Pages) > 0 {
		b.WriteString(renderTiling(m.Pages[m.Cursor]))
		b.WriteString("\n\n")
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Pages))))
	return b.String()
}
