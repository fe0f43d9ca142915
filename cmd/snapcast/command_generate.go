package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/shibukawa/snapcast"
	"github.com/shibukawa/snapcast/castruntime"
	"github.com/shibukawa/snapcast/casting"
	"github.com/shibukawa/snapcast/logicaltype"
)

// GenerateCmd represents the generate command
type GenerateCmd struct {
	Input     string `short:"i" help:"Input logical type, e.g. 'TIMESTAMP(3)'" required:""`
	Target    string `short:"t" help:"Target logical type, e.g. 'STRING'" required:""`
	InputTerm string `help:"Name of the input value variable (defaults to generation.input_term)"`
	NullTerm  string `help:"Name of the input null flag variable (defaults to generation.null_term)"`
	Format    string `help:"Output format" enum:"text,yaml" default:"text"`
	Func      string `help:"Wrap the code block into a Go function with this name"`
	Value     string `help:"Preview the cast result for an RFC 3339 timestamp value"`
}

// generatedBlock is the YAML form of a generated code block
type generatedBlock struct {
	Rule       string   `yaml:"rule"`
	Input      string   `yaml:"input"`
	Target     string   `yaml:"target"`
	Statements []string `yaml:"statements"`
	ReturnTerm string   `yaml:"return_term"`
	IsNullTerm string   `yaml:"is_null_term"`
	Function   string   `yaml:"function,omitempty"`
	Preview    string   `yaml:"preview,omitempty"`
}

// Run executes the generate command
func (cmd *GenerateCmd) Run(ctx *Context) error {
	config, registry, err := loadRegistry(ctx)
	if err != nil {
		return err
	}

	input, target, err := parseTypePair(cmd.Input, cmd.Target)
	if err != nil {
		return err
	}

	inputTerm := cmd.InputTerm
	if inputTerm == "" {
		inputTerm = config.Generation.InputTerm
	}

	nullTerm := cmd.NullTerm
	if nullTerm == "" {
		nullTerm = config.Generation.NullTerm
	}

	block, err := registry.GenerateCodeBlock(config.NewContext(), inputTerm, nullTerm, input, target)
	if err != nil {
		return err
	}

	rule, _ := registry.Resolve(input, target)

	if ctx.Verbose && !ctx.Quiet {
		color.Blue("Rule %s: %s to %s", rule.Name(), input, target)
	}

	result := generatedBlock{
		Rule:       rule.Name(),
		Input:      input.String(),
		Target:     target.String(),
		Statements: block.Statements(),
		ReturnTerm: block.ReturnTerm(),
		IsNullTerm: block.IsNullTerm(),
	}

	if cmd.Func != "" {
		result.Function, err = renderCastFunc(cmd.Func, inputTerm, nullTerm, input, target, block)
		if err != nil {
			return err
		}
	}

	if cmd.Value != "" {
		result.Preview, err = previewTimestampToString(config, rule.Name(), cmd.Value, input)
		if err != nil {
			return err
		}
	}

	switch cmd.Format {
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}

		_, err = ctx.Stdout.Write(data)

		return err
	case "text", "":
		return writeText(ctx, result)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, cmd.Format)
	}
}

func writeText(ctx *Context, result generatedBlock) error {
	if result.Function != "" {
		fmt.Fprint(ctx.Stdout, result.Function)
	} else {
		for _, statement := range result.Statements {
			fmt.Fprintln(ctx.Stdout, statement)
		}

		if !ctx.Quiet {
			fmt.Fprintf(ctx.Stdout, "// result: %s, null: %s\n", result.ReturnTerm, result.IsNullTerm)
		}
	}

	if result.Preview != "" {
		fmt.Fprintf(ctx.Stdout, "// preview: %s\n", result.Preview)
	}

	return nil
}

// previewTimestampToString evaluates the timestamp_to_string cast on a sample
// value, resolving the zone the same way the generated code does
func previewTimestampToString(config *snapcast.Config, ruleName, value string, input logicaltype.LogicalType) (string, error) {
	if ruleName != casting.TimestampToStringCastRule.Name() {
		return "", fmt.Errorf("%w: rule %s", ErrPreviewNotSupported, ruleName)
	}

	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPreviewValue, err)
	}

	zone := castruntime.UTCZone

	if input.Is(logicaltype.RootTimestampWithLocalTimeZone) {
		zone, err = config.SessionLocation()
		if err != nil {
			return "", err
		}
	}

	return castruntime.TimestampToString(ts, zone, logicaltype.Precision(input)), nil
}
