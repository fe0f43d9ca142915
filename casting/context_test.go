package casting

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestGeneratorContext_Defaults(t *testing.T) {
	ctx := NewGeneratorContext()

	assert.Equal(t, "castruntime.SessionTimeZone(ctx)", ctx.SessionTimeZoneTerm())
	assert.Equal(t, "castruntime.UTCZone", ctx.StaticField("UTCZone"))
	assert.Equal(t, "castruntime.TimestampToString(in, castruntime.UTCZone, 3)",
		ctx.StaticCall("TimestampToString", "in", ctx.StaticField("UTCZone"), 3))
}

func TestGeneratorContext_Options(t *testing.T) {
	ctx := NewGeneratorContext(
		WithRuntimePackage("rt"),
		WithNamePrefix("cast"),
	)

	assert.Equal(t, "rt.SessionTimeZone(ctx)", ctx.SessionTimeZoneTerm())
	assert.Equal(t, "rt.UTCZone", ctx.StaticField("UTCZone"))
	assert.Equal(t, "castresult0", ctx.NewName("result"))

	unqualified := NewGeneratorContext(WithRuntimePackage(""), WithSessionTimeZoneTerm("session.Location"))
	assert.Equal(t, "session.Location", unqualified.SessionTimeZoneTerm())
	assert.Equal(t, "Format(x, true, 7)", unqualified.StaticCall("Format", "x", true, int64(7)))
}

func TestGeneratorContext_NewName(t *testing.T) {
	ctx := NewGeneratorContext()

	assert.Equal(t, "result0", ctx.NewName("result"))
	assert.Equal(t, "result1", ctx.NewName("result"))
	assert.Equal(t, "isNull0", ctx.NewName("isNull"))
	assert.Equal(t, "result2", ctx.NewName("result"))

	other := NewGeneratorContext()
	assert.Equal(t, "result0", other.NewName("result"))
}

func TestGeneratorContext_UnsupportedArgument(t *testing.T) {
	assert.Panics(t, func() {
		NewGeneratorContext().StaticCall("F", 1.5)
	})
}

func TestCodeBlock_IsImmutable(t *testing.T) {
	statements := []string{"a := 1"}
	block := NewCodeBlock(statements, "a", "aIsNull")

	statements[0] = "b := 2"
	assert.Equal(t, "a := 1", block.Code())

	copied := block.Statements()
	copied[0] = "c := 3"
	assert.Equal(t, "a := 1", block.Code())
}
