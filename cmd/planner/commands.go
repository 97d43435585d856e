package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/orchestrators/character"
	"github.com/KirkDiggler/wotr-planner/internal/services/roster"
)

// build applies the flag choices to a fresh, unsaved character
func (a *app) build(ctx context.Context, b *buildFlags) (*character.Character, []roster.Rejection, error) {
	data, err := b.data()
	if err != nil {
		return nil, nil, err
	}
	c, err := a.newCharacter(ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, roster.ApplyBuild(ctx, c, data), nil
}

func (a *app) showCmd() *cobra.Command {
	var b buildFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Build a character from flags and print the sheet",
		Example: `  planner show --race Dwarf --heritage "Ancient Bloodline" --class Fighter \
    --stat Str=16 --stat Cha=7 --skill Athletics=1 --feat "Power Attack"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, rejected, err := a.build(cmd.Context(), &b)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeSheet(out, c, a.engine)
			writeRejected(out, rejected)
			return nil
		},
	}
	b.register(cmd.Flags())
	return cmd
}

func (a *app) featsCmd() *cobra.Command {
	var b buildFlags
	var all bool
	cmd := &cobra.Command{
		Use:   "feats",
		Short: "List the feats a character built from flags qualifies for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, rejected, err := a.build(cmd.Context(), &b)
			if err != nil {
				return err
			}

			available := map[string]bool{}
			for _, f := range c.AvailableFeats() {
				available[f.Name] = true
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Feat slots: %d of %d used\n", len(c.FeatNames()), c.TotalFeatSlots())
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, f := range a.catalog.ListFeats() {
				var mark string
				switch {
				case c.HasFeat(f.Name):
					mark = "taken"
				case available[f.Name]:
					mark = "available"
				case all:
					mark = "locked"
				default:
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, mark, prerequisites(f))
			}
			_ = tw.Flush()
			writeRejected(out, rejected)
			return nil
		},
	}
	b.register(cmd.Flags())
	cmd.Flags().BoolVar(&all, "all", false, "include feats whose prerequisites are not met")
	return cmd
}

func prerequisites(f wotr.Feat) string {
	var parts []string
	if f.PrerequisiteLevel > 1 {
		parts = append(parts, fmt.Sprintf("level %d", f.PrerequisiteLevel))
	}
	for _, ability := range wotr.Abilities {
		if v, ok := f.PrerequisiteStats[ability]; ok {
			parts = append(parts, fmt.Sprintf("%s %d", ability, v))
		}
	}
	parts = append(parts, f.PrerequisiteFeats...)
	return joinOrDash(parts)
}

func (a *app) heritagesCmd() *cobra.Command {
	var b buildFlags
	cmd := &cobra.Command{
		Use:   "heritages",
		Short: "List the heritages open to the chosen race",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, rejected, err := a.build(cmd.Context(), &b)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			options := c.HeritageOptions()
			if len(options) == 0 {
				fmt.Fprintf(out, "%s has no heritages\n", c.Race().Name)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, h := range options {
				var mods []string
				for _, ability := range wotr.Abilities {
					if v, ok := h.Modifiers[ability]; ok {
						mods = append(mods, fmt.Sprintf("%s %+d", ability, v))
					}
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", h.Name, joinOrDash(mods), joinOrDash(h.Traits))
			}
			_ = tw.Flush()
			writeRejected(out, rejected)
			return nil
		},
	}
	b.register(cmd.Flags())
	return cmd
}

func (a *app) saveCmd() *cobra.Command {
	var b buildFlags
	var id string
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Apply choices and save the build",
		Long: `Without --id a new character is created from the flags and saved. With
--id the saved build is loaded, the flags are applied on top and the result
replaces it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			data, err := b.data()
			if err != nil {
				return err
			}

			svc, closeRepo, err := a.roster(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			var c *character.Character
			var rejected []roster.Rejection
			if id == "" {
				created, err := svc.NewCharacter(ctx, &roster.NewCharacterInput{
					Name:      data.Name,
					RaceName:  data.Race,
					ClassName: data.Class,
				})
				if err != nil {
					return err
				}
				c = created.Character
			} else {
				loaded, err := svc.Load(ctx, &roster.LoadInput{ID: id})
				if err != nil {
					return err
				}
				c = loaded.Character
				rejected = loaded.Rejected
			}
			rejected = append(rejected, roster.ApplyBuild(ctx, c, data)...)

			saved, err := svc.Save(ctx, &roster.SaveInput{Character: c})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "saved %s\n\n", saved.CharacterData.ID)
			writeSheet(out, c, a.engine)
			writeRejected(out, rejected)
			return nil
		},
	}
	b.register(cmd.Flags())
	cmd.Flags().StringVar(&id, "id", "", "ID of a saved build to update")
	return cmd
}

func (a *app) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <id>",
		Short: "Rebuild a saved character and print the sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, closeRepo, err := a.roster(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			loaded, err := svc.Load(ctx, &roster.LoadInput{ID: args[0]})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writeSheet(out, loaded.Character, a.engine)
			writeRejected(out, loaded.Rejected)
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved builds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, closeRepo, err := a.roster(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			list, err := svc.List(ctx, &roster.ListInput{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list.Characters) == 0 {
				fmt.Fprintln(out, "no saved builds")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tName\tRace\tClass\tLevel")
			for _, d := range list.Characters {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", d.ID, d.Name, d.Race, d.Class, d.Level)
			}
			return tw.Flush()
		},
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, closeRepo, err := a.roster(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			if _, err := svc.Delete(ctx, &roster.DeleteInput{ID: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
