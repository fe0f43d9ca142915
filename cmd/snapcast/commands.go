package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/shibukawa/snapcast"
	"github.com/shibukawa/snapcast/casting"
	"github.com/shibukawa/snapcast/logicaltype"
)

// loadRegistry loads the configuration and builds the registry it describes
func loadRegistry(ctx *Context) (*snapcast.Config, *casting.Registry, error) {
	config, err := snapcast.LoadConfig(ctx.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	registry, err := config.BuildRegistry()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build rule registry: %w", err)
	}

	if ctx.Verbose && !ctx.Quiet {
		color.Blue("Loaded %d rule(s), %d restriction(s)", len(registry.Rules()), len(config.Rules.Restrictions))
	}

	return config, registry, nil
}

// parseTypePair parses the input and target type arguments
func parseTypePair(input, target string) (logicaltype.LogicalType, logicaltype.LogicalType, error) {
	inputType, err := logicaltype.Parse(input)
	if err != nil {
		return logicaltype.LogicalType{}, logicaltype.LogicalType{}, fmt.Errorf("input type: %w", err)
	}

	targetType, err := logicaltype.Parse(target)
	if err != nil {
		return logicaltype.LogicalType{}, logicaltype.LogicalType{}, fmt.Errorf("target type: %w", err)
	}

	return inputType, targetType, nil
}

// RulesCmd represents the rules command
type RulesCmd struct{}

// Run executes the rules command
func (cmd *RulesCmd) Run(ctx *Context) error {
	_, registry, err := loadRegistry(ctx)
	if err != nil {
		return err
	}

	for i, rule := range registry.Rules() {
		_, generates := rule.(casting.CodeGeneratorCastRule)

		kind := "match only"
		if generates {
			kind = "code generator"
		}

		fmt.Fprintf(ctx.Stdout, "%d. %s [%s]: %s\n", i+1, rule.Name(), kind, rule.Predicate())
	}

	return nil
}

// MatchCmd represents the match command
type MatchCmd struct {
	Input  string `short:"i" help:"Input logical type, e.g. 'TIMESTAMP(3)'" required:""`
	Target string `short:"t" help:"Target logical type, e.g. 'STRING'" required:""`
}

// Run executes the match command
func (cmd *MatchCmd) Run(ctx *Context) error {
	_, registry, err := loadRegistry(ctx)
	if err != nil {
		return err
	}

	input, target, err := parseTypePair(cmd.Input, cmd.Target)
	if err != nil {
		return err
	}

	selected, found := registry.Resolve(input, target)

	for _, rule := range registry.Rules() {
		switch {
		case found && rule.Name() == selected.Name():
			fmt.Fprintf(ctx.Stdout, "%s %s\n", color.GreenString("selected"), rule.Name())
		case rule.Predicate().Matches(input, target):
			fmt.Fprintf(ctx.Stdout, "%s %s\n", color.YellowString("shadowed"), rule.Name())
		default:
			fmt.Fprintf(ctx.Stdout, "%s %s\n", color.HiBlackString("skipped "), rule.Name())
		}
	}

	if !found {
		return fmt.Errorf("%w: cannot cast %s to %s", casting.ErrNoCastRule, input, target)
	}

	return nil
}
