package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	feedbackDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/feedback"
	goalDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/goal"
	reviewDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/review"
	skillDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/skill"
	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
	"github.com/dwisusanto/perf-tracker/pkg/apiclient"
	"github.com/dwisusanto/perf-tracker/pkg/listview"
	"github.com/spf13/cobra"
)

var (
	clientServerURL string
	clientPage      int
	clientLimit     int
	clientFilter    string
	clientYes       bool
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Talk to a running server",
	Long:  `Drive the REST API of a running server: list, create, update and delete records.`,
}

var clientListCmd = &cobra.Command{
	Use:   "list <entity>",
	Short: "List a page of records with optional local filtering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEntity(args[0], func(e entityOps) error { return e.list() })
	},
}

var clientCreateCmd = &cobra.Command{
	Use:   "create <entity> <json>",
	Short: "Create a record from a JSON payload",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEntity(args[0], func(e entityOps) error { return e.create(args[1]) })
	},
}

var clientUpdateCmd = &cobra.Command{
	Use:   "update <entity> <id> <json>",
	Short: "Patch a record with a partial JSON payload",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}
		return withEntity(args[0], func(e entityOps) error { return e.update(id, args[2]) })
	},
}

var clientDeleteCmd = &cobra.Command{
	Use:   "delete <entity> <id>",
	Short: "Delete a record (requires --yes to confirm)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}
		return withEntity(args[0], func(e entityOps) error { return e.delete(id) })
	},
}

func init() {
	clientCmd.PersistentFlags().StringVar(&clientServerURL, "server", "http://localhost:3000", "base URL of the running server")
	clientListCmd.Flags().IntVar(&clientPage, "page", 1, "page to fetch")
	clientListCmd.Flags().IntVar(&clientLimit, "limit", 10, "records per page")
	clientListCmd.Flags().StringVar(&clientFilter, "filter", "", "filter the fetched page locally (substring match)")
	clientDeleteCmd.Flags().BoolVar(&clientYes, "yes", false, "confirm the deletion")

	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientCreateCmd)
	clientCmd.AddCommand(clientUpdateCmd)
	clientCmd.AddCommand(clientDeleteCmd)
}

type entityOps interface {
	list() error
	create(payload string) error
	update(id int64, payload string) error
	delete(id int64) error
}

func withEntity(entity string, fn func(entityOps) error) error {
	switch entity {
	case "user":
		return fn(ops[userDatamodel.User]{entity: entity})
	case "review":
		return fn(ops[reviewDatamodel.Review]{entity: entity})
	case "goal":
		return fn(ops[goalDatamodel.Goal]{entity: entity})
	case "skill":
		return fn(ops[skillDatamodel.Skill]{entity: entity})
	case "feedback":
		return fn(ops[feedbackDatamodel.Feedback]{entity: entity})
	default:
		return fmt.Errorf("unknown entity %q (want user, review, goal, skill or feedback)", entity)
	}
}

type ops[T any] struct {
	entity string
}

func (o ops[T]) controller() *listview.Controller[T] {
	gw := apiclient.New[T](clientServerURL, o.entity)
	return listview.NewController[T](gw)
}

func (o ops[T]) list() error {
	ctx := context.Background()
	ctrl := o.controller()
	_ = ctrl.SetPage(ctx, clientPage)
	_ = ctrl.SetLimit(ctx, clientLimit)
	if clientFilter != "" {
		ctrl.SetFilter(listview.ContainsFilter[T](clientFilter))
	}

	if err := ctrl.Load(ctx); err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	for _, rec := range ctrl.Visible() {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	fmt.Printf("page %d of %d, %d shown, %d total\n", ctrl.Page(), ctrl.PageCount(), len(ctrl.Visible()), ctrl.Total())
	return nil
}

func (o ops[T]) create(payload string) error {
	ctx := context.Background()
	ctrl := o.controller()
	ctrl.OpenAdd()
	if err := ctrl.Submit(ctx, json.RawMessage(payload)); err != nil {
		return fmt.Errorf("create %s: %w", o.entity, err)
	}
	fmt.Printf("%s created, %d total\n", o.entity, ctrl.Total())
	return nil
}

func (o ops[T]) update(id int64, payload string) error {
	ctx := context.Background()
	ctrl := o.controller()
	ctrl.OpenEdit(id)
	if err := ctrl.Submit(ctx, json.RawMessage(payload)); err != nil {
		return fmt.Errorf("update %s %d: %w", o.entity, id, err)
	}
	fmt.Printf("%s %d updated\n", o.entity, id)
	return nil
}

func (o ops[T]) delete(id int64) error {
	ctx := context.Background()
	ctrl := o.controller()
	ctrl.RequestDelete(id)
	if !clientYes {
		ctrl.CancelDelete()
		return fmt.Errorf("refusing to delete %s %d without --yes", o.entity, id)
	}
	if err := ctrl.ConfirmDelete(ctx); err != nil {
		return fmt.Errorf("delete %s %d: %w", o.entity, id, err)
	}
	fmt.Printf("%s %d deleted\n", o.entity, id)
	return nil
}
