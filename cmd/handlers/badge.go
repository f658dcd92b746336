package handlers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"maliyet/internal/categorization"
	"maliyet/internal/logger"
	"maliyet/internal/render"

	"github.com/spf13/cobra"
)

// NewBadgeCmd creates the label-to-badge command
func NewBadgeCmd(opts *rootOptions) *cobra.Command {
	var styled bool

	cmd := &cobra.Command{
		Use:   "badge [label...]",
		Short: "Resolve category labels to badge classes",
		Long: `Resolve free-form category labels to badge classes.

Labels are matched after trimming and lowercasing; "ahsap" and "ahşap" are
the same category. Anything unrecognized, including an empty label, gets
badge-default. With no labels, or a single "-", labels are read from stdin,
one per line.

Examples:
  maliyet badge Metal
  maliyet badge " AHŞAP " cam harita --format plain
  maliyet badge --styled Mobilya
  printf 'metal\nplastik\n' | maliyet badge -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBadge(cmd, opts, args, styled)
		},
	}

	cmd.Flags().BoolVarP(&styled, "styled", "s", false, "draw labels as colored badges")

	return cmd
}

func runBadge(cmd *cobra.Command, opts *rootOptions, args []string, styled bool) error {
	labels := args
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		var err error
		labels, err = readLabels(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	r, err := opts.renderer(cmd)
	if err != nil {
		return err
	}

	results := make([]render.Resolution, 0, len(labels))
	for _, label := range labels {
		res := render.Resolve(label)
		if res.Badge == string(categorization.BadgeDefault) {
			logger.Debug("Unrecognized category, using default badge", "input", label)
		}
		results = append(results, res)
	}
	logger.Debug("Resolved badges", "count", len(results))

	return r.Resolutions(results, styled)
}

// readLabels reads one label per line. Blank lines are kept; they resolve to
// the default badge like any other unknown label. Lines have no length limit.
func readLabels(in io.Reader) ([]string, error) {
	var labels []string
	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			labels = append(labels, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if errors.Is(err, io.EOF) {
			return labels, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read labels from stdin: %w", err)
		}
	}
}
