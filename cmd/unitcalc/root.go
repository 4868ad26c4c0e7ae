package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/unitcalc/unitcalc/internal/config"
	"github.com/unitcalc/unitcalc/internal/domain"
	"github.com/unitcalc/unitcalc/internal/platform/logger"
	"github.com/unitcalc/unitcalc/internal/registry"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	configPath string

	cfg      *config.Config
	registry *registry.Registry
	numbers  localeNumbers
	rounding domain.RoundingMode
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "unitcalc",
		Short: "Dimensional analysis and unit algebra",
		Long: `unitcalc renders, rebases and simplifies units and dimensions, converts
quantities between units and picks a representative quantity from a list.

Units are written as catalog ids joined by '*' and '/', with optional
exponents and prefixes: "k.METER/HOUR", "NEWTON*METER^-2". Every factor
after the first '/' is a divisor, so "JOULE/SECOND*AMPERE" is
JOULE·SECOND⁻¹·AMPERE⁻¹; write multiplied factors before the '/'.
Quantities are written MAGNITUDE:UNIT, e.g. "1.5:k.METER".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")

	cmd.AddCommand(
		newIDCommand(a),
		newTypeCommand(a),
		newRebaseCommand(a),
		newSimplifyCommand(a),
		newConvertCommand(a),
		newChooseCommand(a),
		newAliasesCommand(a),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	ctx := logger.WithRunID(cmd.Context(), log)
	cmd.SetContext(ctx)

	opts := []registry.Option{registry.WithLogger(logger.FromContext(ctx))}
	for name, aliases := range cfg.Registry.Aliases {
		opts = append(opts, registry.WithAliases(name, registry.AliasName, aliases...))
	}
	reg, err := registry.New(opts...)
	if err != nil {
		return err
	}

	tag, err := language.Parse(cfg.Output.Locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", cfg.Output.Locale, err)
	}
	rounding, err := domain.ParseRoundingMode(cfg.Output.Rounding)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.registry = reg
	a.numbers = newLocaleNumbers(message.NewPrinter(tag))
	a.rounding = rounding

	logger.FromContext(ctx).Debug("configuration loaded",
		slog.String("command", cmd.Name()),
		slog.String("locale", cfg.Output.Locale),
		slog.String("simplify", cfg.Simplify.Domain().String()))
	return nil
}

// formatMagnitude rounds m to the configured precision and renders the
// exact digits with the separators of the configured locale.
func (a *app) formatMagnitude(m domain.Magnitude) string {
	return a.numbers.format(m.Decimal(a.cfg.Output.Precision, a.rounding).String())
}

func (a *app) formatQuantity(q domain.Quantity) string {
	return a.formatMagnitude(q.Magnitude) + " " + q.Unit.ID()
}
