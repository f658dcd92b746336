package handlers

import (
	"errors"

	"maliyet/internal/categorization"
	"maliyet/internal/logger"
	"maliyet/internal/render"
	"maliyet/internal/tui"

	"github.com/spf13/cobra"
)

// ErrNoSelection is returned when the picker is closed without a choice.
var ErrNoSelection = errors.New("no category selected")

// NewPickCmd creates the interactive category picker command
func NewPickCmd(opts *rootOptions) *cobra.Command {
	var styled bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a category interactively",
		Long: `Pick a category from an interactive list.

The list is drawn on stderr so the chosen value and its badge class can be
captured from stdout.

Keys:
  ↑/k, ↓/j    move
  g/G         first/last
  enter       select
  q, esc      cancel

Examples:
  maliyet pick
  kategori=$(maliyet pick --format plain | cut -f1)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, opts, styled)
		},
	}

	cmd.Flags().BoolVarP(&styled, "styled", "s", false, "draw the chosen label as a colored badge")

	return cmd
}

func runPick(cmd *cobra.Command, opts *rootOptions, styled bool) error {
	r, err := opts.renderer(cmd)
	if err != nil {
		return err
	}

	model := tui.NewModel(categorization.Options(), render.NewBadgeStyles(cmd.ErrOrStderr(), opts.cfg.Output.Color))
	final, err := tui.Run(model, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	choice, ok := final.Choice()
	if !ok {
		return ErrNoSelection
	}
	logger.Debug("Category picked", "value", choice.Value)

	return r.Choice(choice, styled)
}
