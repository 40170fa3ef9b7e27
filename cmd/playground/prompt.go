package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/playground/prompt"
)

func newPromptCmd(a *app) *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "prompt [category]",
		Short: "List prompt templates or explain a category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			catalog, err := prompt.NewCatalog(a.cfg.Prompt.Templates)
			if err != nil {
				return err
			}

			var cat prompt.Category
			switch {
			case len(args) == 1:
				if cat, err = prompt.ParseCategory(args[0]); err != nil {
					return err
				}
			case id != 0:
				if err := catalog.Select(id); err != nil {
					return err
				}
				t, _ := catalog.Current()
				cat = t.Category
				fmt.Fprintf(w, "%d. %s\n", t.ID, t.Subject)
			default:
				for _, t := range catalog.Templates() {
					fmt.Fprintf(w, "%d. %-40s [%s]\n", t.ID, t.Subject, t.Category.Title())
				}
				return nil
			}

			guide, err := prompt.Render(cat, prompt.Guides())
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\n\n%s\n", cat.Title(), guide)
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "show the template with this id")
	return cmd
}
