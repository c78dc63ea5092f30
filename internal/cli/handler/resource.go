package handler

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/styles"
)

// Service is the record access contract every managed collection offers
type Service[T, N, P any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, req N) (*T, error)
	Update(ctx context.Context, id string, req P) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Resource describes one collection to the generic list, show, create,
// update and delete subcommands
type Resource[T, N, P any] struct {
	Use     string // "task"
	Plural  string // "tasks"
	Title   string // "Task"
	Aliases []string

	Service func(*cli.CLI) Service[T, N, P]

	// Flags declares the create and update flags; Required lists the ones
	// create cannot do without
	Flags    func(cmd *cobra.Command)
	Required []string
	New      func(p *FlagParser) (N, error)
	Patch    func(p *FlagParser) (P, error)

	// List replaces GetAll when set; ListFlags declares its filters
	List      func(ctx context.Context, c *cli.CLI, p *FlagParser) ([]*T, error)
	ListFlags func(cmd *cobra.Command)

	Columns []string
	Row     func(item *T) []string
	Detail  func(item *T) [][2]string
}

// Command returns the parent command with all five subcommands
func (r Resource[T, N, P]) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     r.Use,
		Aliases: r.Aliases,
		Short:   "Manage " + r.Plural,
	}
	cmd.AddCommand(r.ListCmd(), r.ShowCmd(), r.CreateCmd(), r.UpdateCmd(), r.DeleteCmd())
	return cmd
}

// ListCmd returns the list subcommand
func (r Resource[T, N, P]) ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all " + r.Plural,
		Long:  fmt.Sprintf("List all %s, newest first.", r.Plural),
		Args:  cobra.NoArgs,
	}
	if r.ListFlags != nil {
		r.ListFlags(cmd)
	}
	cli.AddOutputFlags(cmd)

	cmd.RunE = Command(func(ctx context.Context, c *cli.CLI, p *FlagParser) ([]*T, error) {
		if r.List != nil {
			return r.List(ctx, c, p)
		}
		return r.Service(c).GetAll(ctx)
	}, Output[[]*T]{
		Human: r.renderList,
		IDs:   ids[T],
	})
	return cmd
}

// ShowCmd returns the show subcommand
func (r Resource[T, N, P]) ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: fmt.Sprintf("Show one %s", r.Use),
		Args:  cobra.NoArgs,
	}
	addIDFlag(cmd, r.Title)
	cli.AddOutputFlags(cmd)

	cmd.RunE = Command(func(ctx context.Context, c *cli.CLI, p *FlagParser) (*T, error) {
		id, err := p.ParseID()
		if err != nil {
			return nil, err
		}
		return r.Service(c).GetByID(ctx, id)
	}, Output[*T]{
		Human: r.renderDetail,
		IDs:   one[T],
	})
	return cmd
}

// CreateCmd returns the create subcommand
func (r Resource[T, N, P]) CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a %s", r.Use),
		Args:  cobra.NoArgs,
	}
	r.Flags(cmd)
	for _, name := range r.Required {
		_ = cmd.MarkFlagRequired(name)
	}
	cli.AddOutputFlags(cmd)

	cmd.RunE = Command(func(ctx context.Context, c *cli.CLI, p *FlagParser) (*T, error) {
		req, err := r.New(p)
		if err != nil {
			return nil, err
		}
		return r.Service(c).Create(ctx, req)
	}, Output[*T]{
		Human: func(w io.Writer, item *T) {
			styles.Done(w, "%s %s created successfully", r.Title, idOf(item))
			r.renderDetail(w, item)
		},
		IDs: one[T],
	})
	return cmd
}

// UpdateCmd returns the update subcommand. Only the flags given are changed.
func (r Resource[T, N, P]) UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: fmt.Sprintf("Update a %s", r.Use),
		Long:  "Update the fields named by the given flags and leave the rest untouched.",
		Args:  cobra.NoArgs,
	}
	addIDFlag(cmd, r.Title)
	r.Flags(cmd)
	cli.AddOutputFlags(cmd)

	cmd.RunE = Command(func(ctx context.Context, c *cli.CLI, p *FlagParser) (*T, error) {
		id, err := p.ParseID()
		if err != nil {
			return nil, err
		}
		patch, err := r.Patch(p)
		if err != nil {
			return nil, err
		}
		return r.Service(c).Update(ctx, id, patch)
	}, Output[*T]{
		Human: func(w io.Writer, item *T) {
			styles.Done(w, "%s %s updated successfully", r.Title, idOf(item))
			r.renderDetail(w, item)
		},
		IDs: one[T],
	})
	return cmd
}

// deleted is the result of a delete subcommand
type deleted struct {
	ID        string `json:"id"`
	Deleted   bool   `json:"deleted"`
	Cancelled bool   `json:"cancelled,omitempty"`
}

func (d deleted) GetID() string { return d.ID }

// DeleteCmd returns the delete subcommand. It asks for confirmation unless
// --force, --quiet or --json is given.
func (r Resource[T, N, P]) DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: fmt.Sprintf("Delete a %s", r.Use),
		Long:  fmt.Sprintf("Delete a %s by ID (requires confirmation unless --force or --quiet).", r.Use),
		Args:  cobra.NoArgs,
	}
	addIDFlag(cmd, r.Title)
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	cmd.RunE = Command(func(ctx context.Context, c *cli.CLI, p *FlagParser) (deleted, error) {
		id, err := p.ParseID()
		if err != nil {
			return deleted{}, err
		}
		svc := r.Service(c)

		jsonOutput, quietMode := p.OutputFormats()
		if !p.ParseBool("force") && !quietMode && !jsonOutput {
			item, err := svc.GetByID(ctx, id)
			if err != nil {
				return deleted{}, err
			}
			prompt := fmt.Sprintf("Delete %s %s?", r.Use, idOf(item))
			if !cli.Confirm(p.cmd.InOrStdin(), p.cmd.OutOrStdout(), prompt) {
				return deleted{ID: id, Cancelled: true}, nil
			}
		}

		if err := svc.Delete(ctx, id); err != nil {
			return deleted{}, err
		}
		return deleted{ID: id, Deleted: true}, nil
	}, Output[deleted]{
		Human: func(w io.Writer, d deleted) {
			if d.Cancelled {
				fmt.Fprintln(w, "Cancelled")
				return
			}
			styles.Done(w, "%s %s deleted successfully", r.Title, d.ID)
		},
	})
	return cmd
}

// ============================================================================
// RENDERING
// ============================================================================

func (r Resource[T, N, P]) renderList(w io.Writer, items []*T) {
	if len(items) == 0 {
		fmt.Fprintf(w, "No %s found\n", r.Plural)
		return
	}
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = r.Row(item)
	}
	fmt.Fprintf(w, "Found %d %s:\n", len(items), r.Plural)
	styles.Table(w, r.Columns, rows)
}

func (r Resource[T, N, P]) renderDetail(w io.Writer, item *T) {
	styles.Fields(w, r.Title+" "+idOf(item), r.Detail(item))
}

func addIDFlag(cmd *cobra.Command, title string) {
	cmd.Flags().String("id", "", title+" ID (required)")
	_ = cmd.MarkFlagRequired("id")
}

// idOf reads the id of a record; every model implements GetID on its pointer
func idOf[T any](item *T) string {
	if g, ok := any(item).(interface{ GetID() string }); ok {
		return g.GetID()
	}
	return ""
}

func ids[T any](items []*T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = idOf(item)
	}
	return out
}

func one[T any](item *T) []string {
	return []string{idOf(item)}
}
