package handlers

import (
	"maliyet/internal/categorization"
	"maliyet/internal/logger"

	"github.com/spf13/cobra"
)

// NewCategoriesCmd creates the category listing command
func NewCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"list"},
		Short:   "List the category options",
		Long: `List the fixed category options in display order, with the badge
class each one resolves to.

Examples:
  maliyet categories
  maliyet categories --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(cmd, opts)
		},
	}
}

func runCategories(cmd *cobra.Command, opts *rootOptions) error {
	r, err := opts.renderer(cmd)
	if err != nil {
		return err
	}

	options := categorization.Options()
	logger.Debug("Listing categories", "count", len(options))
	return r.Options(options)
}
