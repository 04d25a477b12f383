package main

import (
	"fmt"
	"strings"

	"github.com/dori/wille/internal/app"
	"github.com/dori/wille/internal/model"
	"github.com/dori/wille/internal/ui"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List groups and their plans",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := model.ParseFilter(filter)
			if err != nil {
				return err
			}

			return opts.withApp(func(a *app.App) error {
				a.Store.SetFilter(f)
				out := cmd.OutOrStdout()

				subjects := a.Store.Subjects()
				if len(subjects) == 0 {
					fmt.Fprintln(out, "No groups yet.")
					return nil
				}

				for _, s := range subjects {
					fmt.Fprintf(out, "# %d %s\n", s.ID, s.Title)
					for _, t := range a.Store.TodosForSubject(s.ID) {
						box := "[ ]"
						if t.Done {
							box = "[x]"
						}
						fmt.Fprintf(out, "  %s %d %s\n", box, t.ID, t.Title)
					}
				}

				p := a.Store.Progress()
				fmt.Fprintf(out, "\n%s %s\n", p.Mood.Emoji(), ui.ProgressBar(p, 20))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "show all, done or undone plans")
	return cmd
}

func newSubjectCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subject",
		Aliases: []string{"group"},
		Short:   "Manage groups",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add [title]",
			Short: "Add a group",
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withApp(func(a *app.App) error {
					s := a.Store.AddSubject()
					if len(args) > 0 {
						a.Store.ChangeSubjectTitle(s.ID, strings.Join(args, " "))
						s, _ = a.Store.Subject(s.ID)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Created group %d: %s\n", s.ID, s.Title)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rename <id> <title>",
			Short: "Rename a group",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return opts.withApp(func(a *app.App) error {
					if _, ok := a.Store.Subject(id); !ok {
						return fmt.Errorf("no group with id %d", id)
					}
					a.Store.ChangeSubjectTitle(id, strings.Join(args[1:], " "))
					s, _ := a.Store.Subject(id)
					fmt.Fprintf(cmd.OutOrStdout(), "Renamed group %d: %s\n", s.ID, s.Title)
					return nil
				})
			},
		},
		newSubjectRemoveCmd(opts),
	)
	return cmd
}

func newSubjectRemoveCmd(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a group together with its plans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return opts.withApp(func(a *app.App) error {
				if !a.Store.RequestRemoveSubject(id) {
					return fmt.Errorf("no group with id %d", id)
				}

				n := 0
				for _, t := range a.Store.Todos() {
					if t.SubjectID == id {
						n++
					}
				}
				if !yes {
					a.Store.Cancel()
					return fmt.Errorf("removing group %d also removes %d plan(s), rerun with --yes", id, n)
				}

				a.Store.Confirm()
				fmt.Fprintf(cmd.OutOrStdout(), "Removed group %d and %d plan(s)\n", id, n)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the removal")
	return cmd
}

func newResetCmd(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every group and plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(func(a *app.App) error {
				if !a.Store.RequestReset() {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to reset")
					return nil
				}
				if !yes {
					a.Store.Cancel()
					return fmt.Errorf("reset removes %d group(s) and %d plan(s), rerun with --yes",
						len(a.Store.Subjects()), len(a.Store.Todos()))
				}

				a.Store.Confirm()
				fmt.Fprintln(cmd.OutOrStdout(), "Removed everything")
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the reset")
	return cmd
}
