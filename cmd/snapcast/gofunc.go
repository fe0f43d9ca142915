package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"text/template"

	"github.com/shibukawa/snapcast/casting"
	"github.com/shibukawa/snapcast/logicaltype"
)

var castFuncTemplate = template.Must(template.New("castfunc").Parse(`func {{ .Name }}(ctx context.Context, {{ .InputTerm }} {{ .InputType }}, {{ .NullTerm }} bool) ({{ .TargetType }}, bool) {
{{- range .Statements }}
	{{ . }}
{{- end }}
	return {{ .ReturnTerm }}, {{ .IsNullTerm }}
}
`))

type castFuncData struct {
	Name       string
	InputTerm  string
	InputType  string
	NullTerm   string
	TargetType string
	Statements []string
	ReturnTerm string
	IsNullTerm string
}

// goTypeOf returns the Go type generated code uses for values of t
func goTypeOf(t logicaltype.LogicalType) (string, error) {
	switch {
	case t.IsFamily(logicaltype.FamilyCharacterString):
		return "string", nil
	case t.IsFamily(logicaltype.FamilyBinaryString):
		return "[]byte", nil
	case t.IsFamily(logicaltype.FamilyDatetime):
		return "time.Time", nil
	}

	switch t.Root() {
	case logicaltype.RootBoolean:
		return "bool", nil
	case logicaltype.RootTinyInt:
		return "int8", nil
	case logicaltype.RootSmallInt:
		return "int16", nil
	case logicaltype.RootInteger:
		return "int32", nil
	case logicaltype.RootBigInt:
		return "int64", nil
	case logicaltype.RootFloat:
		return "float32", nil
	case logicaltype.RootDouble:
		return "float64", nil
	case logicaltype.RootDecimal:
		return "decimal.Decimal", nil
	case logicaltype.RootNull:
		return "any", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedInputType, t)
	}
}

// renderCastFunc wraps a code block into a gofmt'ed Go function
func renderCastFunc(name, inputTerm, nullTerm string, input, target logicaltype.LogicalType, block casting.CodeBlock) (string, error) {
	if !token.IsIdentifier(name) {
		return "", fmt.Errorf("%w: '%s'", ErrInvalidFunctionName, name)
	}

	inputType, err := goTypeOf(input)
	if err != nil {
		return "", err
	}

	targetType, err := goTypeOf(target)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer

	err = castFuncTemplate.Execute(&buf, castFuncData{
		Name:       name,
		InputTerm:  inputTerm,
		InputType:  inputType,
		NullTerm:   nullTerm,
		TargetType: targetType,
		Statements: block.Statements(),
		ReturnTerm: block.ReturnTerm(),
		IsNullTerm: block.IsNullTerm(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render function: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to format generated code: %w", err)
	}

	return string(formatted), nil
}
