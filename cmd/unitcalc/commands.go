package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/unitcalc/unitcalc/internal/domain"
	"github.com/unitcalc/unitcalc/internal/domain/chooser"
	"github.com/unitcalc/unitcalc/internal/platform/logger"
	"github.com/unitcalc/unitcalc/internal/registry"
)

// resolve parses expr as a unit expression, falling back to a dimension
// expression. The unit error is reported when neither parses.
func resolve(expr string) (unit *domain.Unit, dim *domain.Dimension, err error) {
	u, unitErr := parseUnit(expr)
	if unitErr == nil {
		return &u, nil, nil
	}
	d, dimErr := parseDimension(expr)
	if dimErr == nil {
		return nil, &d, nil
	}
	return nil, nil, unitErr
}

func newIDCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "id EXPR...",
		Short: "Render the canonical id of units or dimensions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				u, d, err := resolve(arg)
				if err != nil {
					return err
				}
				if u != nil {
					fmt.Fprintln(cmd.OutOrStdout(), u.ID())
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), d.ID())
				}
			}
			return nil
		},
	}
}

func newTypeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "type UNIT",
		Short: "Show the dimension of a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := parseUnit(args[0])
			if err != nil {
				return err
			}
			t := u.Type()
			out := t.ID()
			if name, ok := domain.DimensionName(t.Rebase()); ok && name != out {
				out += " (" + name + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newRebaseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rebase EXPR",
		Short: "Expand nested composites of a unit or dimension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, d, err := resolve(args[0])
			if err != nil {
				return err
			}
			if u != nil {
				fmt.Fprintln(cmd.OutOrStdout(), u.Rebase().ID())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), d.Rebase().ID())
			}
			return nil
		},
	}
}

type simplifyOpts struct {
	recursive        bool
	substituteNamed  bool
	mergePrefixes    bool
	preferPrefixForm bool
}

func newSimplifyCommand(a *app) *cobra.Command {
	opts := simplifyOpts{}

	cmd := &cobra.Command{
		Use:   "simplify UNIT",
		Short: "Rewrite a unit into a simpler equivalent",
		Long: `Rewrite a unit into a simpler equivalent form.

Flags left unset take their value from the simplify section of the
configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := parseUnit(args[0])
			if err != nil {
				return err
			}

			settings := a.cfg.Simplify
			flags := cmd.Flags()
			if flags.Changed("recursive") {
				settings.Recursive = opts.recursive
			}
			if flags.Changed("substitute-named") {
				settings.SubstituteNamed = opts.substituteNamed
			}
			if flags.Changed("merge-prefixes") {
				settings.MergePrefixes = opts.mergePrefixes
			}
			if flags.Changed("prefer-prefix-form") {
				settings.PreferPrefixForm = opts.preferPrefixForm
			}

			cfg := settings.Domain()
			simplified := u.Simplify(cfg)
			logger.FromContext(cmd.Context()).Debug("simplified unit",
				slog.String("unit", u.ID()),
				slog.String("result", simplified.ID()),
				slog.String("config", cfg.String()))
			fmt.Fprintln(cmd.OutOrStdout(), simplified.ID())
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.recursive, "recursive", true, "expand prefix-defined units such as KILOGRAM")
	cmd.Flags().BoolVar(&opts.substituteNamed, "substitute-named", true, "replace base expansions by named units")
	cmd.Flags().BoolVar(&opts.mergePrefixes, "merge-prefixes", true, "fold component prefixes into the overall prefix")
	cmd.Flags().BoolVar(&opts.preferPrefixForm, "prefer-prefix-form", true, "prefer a prefixed named unit over definitions and named groups")
	return cmd
}

func newConvertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert MAGNITUDE:UNIT TARGET",
		Short: "Express a quantity in another unit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuantity(args[0])
			if err != nil {
				return err
			}
			target, err := parseUnit(args[1])
			if err != nil {
				return err
			}
			out, err := a.registry.ConvertTo(q, target)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatQuantity(out))
			return nil
		},
	}
}

func newChooseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "choose min|max|median|average MAGNITUDE:UNIT...",
		Short: "Pick a representative quantity",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := chooser.ParseKind(args[0])
			if err != nil {
				return err
			}
			strategy, err := chooser.New(kind)
			if err != nil {
				return err
			}

			quantities := make([]domain.Quantity, 0, len(args)-1)
			for _, arg := range args[1:] {
				q, err := parseQuantity(arg)
				if err != nil {
					return err
				}
				quantities = append(quantities, q)
			}

			chosen, err := strategy.Choose(quantities, a.registry)
			if err != nil {
				return err
			}
			logger.FromContext(cmd.Context()).Debug("chose quantity",
				slog.String("strategy", kind.String()),
				slog.Int("count", len(quantities)),
				slog.String("result", chosen.String()))
			fmt.Fprintln(cmd.OutOrStdout(), a.formatQuantity(chosen))
			return nil
		},
	}
}

func newAliasesCommand(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "aliases NAME",
		Short: "List the aliases of a unit or dimension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := registry.ParseAliasKind(kind)
			if err != nil {
				return err
			}
			u, d, err := resolve(args[0])
			if err != nil {
				return err
			}

			var aliases []string
			if u != nil {
				aliases = a.registry.Aliases(*u, k)
			} else {
				aliases = a.registry.Aliases(*d, k)
			}
			for _, alias := range aliases {
				fmt.Fprintln(cmd.OutOrStdout(), alias)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "name", "alias kind: symbol, name or plural")
	return cmd
}
