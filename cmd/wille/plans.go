package main

import (
	"fmt"
	"strings"

	"github.com/dori/wille/internal/app"
	"github.com/dori/wille/internal/model"
	"github.com/spf13/cobra"
)

// todoCommand resolves the todo id in args[0] before running fn
func todoCommand(opts *options, fn func(cmd *cobra.Command, a *app.App, t model.Todo, rest []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return opts.withApp(func(a *app.App) error {
			t, ok := a.Store.Todo(id)
			if !ok {
				return fmt.Errorf("no plan with id %d", id)
			}
			return fn(cmd, a, t, args[1:])
		})
	}
}

func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <subject-id> [title]",
		Short: "Add a plan to a group",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subjectID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return opts.withApp(func(a *app.App) error {
				t, ok := a.Store.AddTodo(subjectID)
				if !ok {
					return fmt.Errorf("no group with id %d", subjectID)
				}
				if len(args) > 1 {
					a.Store.ChangeTodoTitle(t.ID, strings.Join(args[1:], " "))
					t, _ = a.Store.Todo(t.ID)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created plan %d: %s\n", t.ID, t.Title)
				return nil
			})
		},
	}
}

func newRemoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a plan",
		Args:  cobra.ExactArgs(1),
		RunE: todoCommand(opts, func(cmd *cobra.Command, a *app.App, t model.Todo, _ []string) error {
			a.Store.RemoveTodo(t.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed plan %d\n", t.ID)
			return nil
		}),
	}
}

func newDoneCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle whether a plan is done",
		Args:  cobra.ExactArgs(1),
		RunE: todoCommand(opts, func(cmd *cobra.Command, a *app.App, t model.Todo, _ []string) error {
			a.Store.ToggleTodoDone(t.ID)
			state := "done"
			if t.Done {
				state = "not done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan %d is %s\n", t.ID, state)
			return nil
		}),
	}
}

func newRenameCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Rename a plan",
		Args:  cobra.MinimumNArgs(2),
		RunE: todoCommand(opts, func(cmd *cobra.Command, a *app.App, t model.Todo, rest []string) error {
			if t.Done {
				return fmt.Errorf("plan %d is done, undo it before renaming", t.ID)
			}
			a.Store.ChangeTodoTitle(t.ID, strings.Join(rest, " "))
			t, _ = a.Store.Todo(t.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed plan %d: %s\n", t.ID, t.Title)
			return nil
		}),
	}
}

func newMoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "move <up|down> <id>",
		Short:     "Move a plan to the previous or next group",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir model.Direction
			switch strings.ToLower(args[0]) {
			case "up":
				dir = model.DirectionUp
			case "down":
				dir = model.DirectionDown
			default:
				return fmt.Errorf("invalid direction %q (want up or down)", args[0])
			}

			return todoCommand(opts, func(cmd *cobra.Command, a *app.App, t model.Todo, _ []string) error {
				if !a.Store.CanMove(dir, t.ID) {
					return fmt.Errorf("plan %d has no group %s", t.ID, strings.ToLower(args[0]))
				}
				a.Store.MoveTodo(dir, t.ID)
				t, _ = a.Store.Todo(t.ID)
				fmt.Fprintf(cmd.OutOrStdout(), "Moved plan %d to group %d\n", t.ID, t.SubjectID)
				return nil
			})(cmd, args[1:])
		},
	}
}
