package optset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseEmptyInput(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--level", WithType(Numeric), WithDefault(3)),
		MustOption("--force", WithType(Standalone)),
	})
	require.Nil(t, err, "parser construction should succeed on a collision-free descriptor set")

	result, err := parser.Parse([]string{})
	require.Nil(t, err, "parsing an empty token stream should succeed")
	level, err := result.GetInt("level")
	assert.Nil(t, err, "default value should be retrievable")
	assert.Equal(t, int64(3), level, "result should be pre-seeded with the declared default")
	assert.False(t, result.Has("force"), "a switch without a default should be absent from an empty parse")
	assert.Empty(t, result.Leading(), "empty input should yield no leading positionals")
	assert.Empty(t, result.Trailing(), "empty input should yield no trailing positionals")
}

func TestParser_ShortAndLongFormsAreEquivalent(t *testing.T) {
	options := []*Option{
		MustOption("--verbose", WithShort("v"), WithType(Standalone)),
	}

	long, err := NewParser(options)
	require.Nil(t, err)
	short, err := NewParser(options)
	require.Nil(t, err)

	longResult, err := long.Parse([]string{"--verbose"})
	require.Nil(t, err)
	shortResult, err := short.Parse([]string{"-v"})
	require.Nil(t, err)

	longValue, _ := longResult.Get("verbose")
	shortValue, _ := shortResult.Get("verbose")
	assert.Equal(t, longValue, shortValue, "-v and --verbose should store identical values under the canonical name")
	assert.Equal(t, true, longValue, "a standalone switch should evaluate to true")
}

func TestParser_AutoNegation(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--verbose", WithType(Standalone), WithDefault(true)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"--no-verbose"})
	require.Nil(t, err, "--no-X should be accepted when --X is a registered long switch")
	verbose, err := result.GetBool("verbose")
	assert.Nil(t, err)
	assert.False(t, verbose, "--no-verbose should set verbose to false")
}

func TestParser_NegationAppliesOnlyToBooleanSwitches(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--name", WithType(Single)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"--no-name"})
	require.Nil(t, err, "--no-X over a value-carrying --X matches no switch")
	assert.False(t, result.Has("name"), "a non-boolean switch must never receive a negated value")
	assert.Equal(t, []string{"--no-name"}, result.Trailing(), "the token should be treated as positional")
}

func TestParser_ExplicitNoDescriptorOverridesNegation(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--color", WithType(Standalone)),
		MustOption("--no-color", WithType(Single)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"--no-color", "auto"})
	require.Nil(t, err)
	value, err := result.GetString("no-color")
	assert.Nil(t, err, "an explicitly declared --no-X switch should be handled by its own descriptor")
	assert.Equal(t, "auto", value)
	assert.False(t, result.Has("color"), "the auto-negation rule should not fire for an overridden switch")
}

func TestParser_InlineNumericShortForm(t *testing.T) {
	options := []*Option{
		MustOption("--level", WithShort("l"), WithType(Numeric)),
	}

	parser, err := NewParser(options)
	require.Nil(t, err)

	result, err := parser.Parse([]string{"-l3.5"})
	require.Nil(t, err, "-l3.5 should split into switch and value")
	level, err := result.GetFloat("level")
	assert.Nil(t, err)
	assert.Equal(t, 3.5, level, "a literal with a decimal point should coerce to a floating value")

	parser, err = NewParser(options)
	require.Nil(t, err)
	result, err = parser.Parse([]string{"-l3.5.1"})
	assert.Nil(t, result, "no partial result should be returned on error")
	require.NotNil(t, err, "-l3.5.1 should fail numeric coercion")
	assert.True(t, errors.Is(err, ErrNotNumeric), "the error should wrap ErrNotNumeric")

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr), "all parse failures should be ParseErrors")
}

func TestParser_InlineEqualsForms(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--name", WithShort("n"), WithType(Single)),
		MustOption("--level", WithShort("l"), WithType(Numeric)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"--name=joe", "-l=42"})
	require.Nil(t, err)
	name, _ := result.GetString("name")
	assert.Equal(t, "joe", name, "--form=value should split on the equals sign")
	level, _ := result.GetInt("level")
	assert.Equal(t, int64(42), level, "-x=value should split on the equals sign")
}

func TestParser_SquashedBooleanCluster(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--all", WithShort("a"), WithType(Standalone)),
		MustOption("--brief", WithShort("b"), WithType(Standalone)),
		MustOption("--count", WithShort("c"), WithType(Standalone)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"-abc"})
	require.Nil(t, err, "a cluster of registered boolean shorts should expand")
	for _, name := range []string{"all", "brief", "count"} {
		value, e := result.GetBool(name)
		assert.Nil(t, e)
		assert.True(t, value, "cluster member %s should be set", name)
	}
}

func TestParser_ClusterWithUnknownLetterIsPositional(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--all", WithShort("a"), WithType(Standalone)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"-az", "rest"})
	require.Nil(t, err)
	assert.False(t, result.Has("all"), "a cluster containing an unregistered letter should not expand")
	assert.Equal(t, []string{"-az", "rest"}, result.Trailing(), "the token should be treated as positional")
}

func TestParser_RequiredSwitch(t *testing.T) {
	options := []*Option{
		MustOption("--name", WithType(Single), SetRequired(true)),
	}

	parser, err := NewParser(options)
	require.Nil(t, err)
	result, err := parser.Parse([]string{})
	assert.Nil(t, result)
	require.NotNil(t, err, "a required switch absent from the input should fail")
	assert.True(t, errors.Is(err, ErrRequiredMissing))

	parser, err = NewParser(options)
	require.Nil(t, err)
	result, err = parser.Parse([]string{"--name", "x"})
	require.Nil(t, err)
	name, _ := result.GetString("name")
	assert.Equal(t, "x", name)
}

func TestParser_RequiredSatisfiedByDefault(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--mode", WithType(Single), SetRequired(true), WithDefault("fast")),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{})
	require.Nil(t, err, "a required switch with a default should pass validation")
	mode, _ := result.GetString("mode")
	assert.Equal(t, "fast", mode)
}

func TestParser_MissingValueErrors(t *testing.T) {
	options := []*Option{
		MustOption("--name", WithType(Single)),
		MustOption("--force", WithShort("f"), WithType(Standalone)),
	}

	parser, err := NewParser(options)
	require.Nil(t, err)
	_, err = parser.Parse([]string{"--name"})
	require.NotNil(t, err, "a value switch at the end of input should fail")
	assert.True(t, errors.Is(err, ErrMissingValue))

	parser, err = NewParser(options)
	require.Nil(t, err)
	_, err = parser.Parse([]string{"--name", "-f"})
	require.NotNil(t, err, "a value switch followed by another switch should fail")
	assert.True(t, errors.Is(err, ErrSwitchAsValue))
}

func TestParser_NegativeNumberIsNotASwitch(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--offset", WithType(Numeric)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"--offset", "-5"})
	require.Nil(t, err, "-5 matches no switch shape and should be consumed as a value")
	offset, _ := result.GetInt("offset")
	assert.Equal(t, int64(-5), offset)
}

func TestParser_HashSwitch(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--opts", WithType(Hash)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"--opts", "a:1 b:2"})
	require.Nil(t, err)
	hash, err := result.GetHash("opts")
	require.Nil(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, hash)
}

func TestParser_ChainedSwitch(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--list", WithType(Chained)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"--list", "[a, b, c]"})
	require.Nil(t, err)
	list, err := result.GetList("list")
	require.Nil(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, list)
}

func TestParser_LeadingAndTrailingPositionals(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--flag", WithType(Standalone)),
	}, WithLeadingScan())
	require.Nil(t, err)

	result, err := parser.Parse([]string{"foo", "--flag", "bar"})
	require.Nil(t, err)
	assert.Equal(t, []string{"foo"}, result.Leading(), "tokens before the first switch should be collected")
	flag, _ := result.GetBool("flag")
	assert.True(t, flag)
	assert.Equal(t, []string{"bar"}, result.Trailing(), "tokens after the last switch should remain")
}

func TestParser_NoLeadingScanStopsAtFirstPositional(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--flag", WithType(Standalone)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"foo", "--flag", "bar"})
	require.Nil(t, err)
	assert.Empty(t, result.Leading(), "leading scan is off by default")
	assert.False(t, result.Has("flag"), "switch processing should stop at the first positional")
	assert.Equal(t, []string{"foo", "--flag", "bar"}, result.Trailing())
}

func TestParser_UnknownSwitchShapedTokenIsPositional(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--flag", WithType(Standalone)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"--unknown", "--flag"})
	require.Nil(t, err, "an unregistered long-shaped token is not a switch")
	assert.False(t, result.Has("flag"))
	assert.Equal(t, []string{"--unknown", "--flag"}, result.Trailing())
}

func TestParser_OptionalTypeConsumesValueWhenPresent(t *testing.T) {
	options := []*Option{
		MustOption("--template", WithType(Optional)),
	}

	parser, err := NewParser(options)
	require.Nil(t, err)
	result, err := parser.Parse([]string{"--template", "admin"})
	require.Nil(t, err)
	template, _ := result.GetString("template")
	assert.Equal(t, "admin", template, "an optional switch should consume a plain next token")

	parser, err = NewParser(options)
	require.Nil(t, err)
	result, err = parser.Parse([]string{"--template"})
	require.Nil(t, err)
	present, e := result.GetBool("template")
	assert.Nil(t, e)
	assert.True(t, present, "an optional switch with no value should record a presence marker")

	parser, err = NewParser(options)
	require.Nil(t, err)
	result, err = parser.Parse([]string{"--template", "-something"})
	require.Nil(t, err)
	present, e = result.GetBool("template")
	assert.Nil(t, e)
	assert.True(t, present, "a following token starting with '-' should not be consumed")
	assert.Equal(t, []string{"-something"}, result.Trailing())
}

func TestParser_DefaultOverwrittenBySuppliedValue(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--level", WithType(Numeric), WithDefault(1)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"--level", "9"})
	require.Nil(t, err)
	level, _ := result.GetInt("level")
	assert.Equal(t, int64(9), level, "a supplied value should overwrite the default")
}

func TestParser_LastSwitchWins(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--name", WithType(Single)),
	})
	require.Nil(t, err)

	result, err := parser.Parse([]string{"--name", "first", "--name", "second"})
	require.Nil(t, err)
	name, _ := result.GetString("name")
	assert.Equal(t, "second", name, "a repeated switch should keep the last value")
}

func TestParser_ParseString(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--name", WithType(Single)),
		MustOption("--force", WithType(Standalone)),
	})
	require.Nil(t, err)

	result, err := parser.ParseString(`--name "joe cool" --force extra`)
	require.Nil(t, err, "quoted values should survive shell-style splitting")
	name, _ := result.GetString("name")
	assert.Equal(t, "joe cool", name)
	force, _ := result.GetBool("force")
	assert.True(t, force)
	assert.Equal(t, []string{"extra"}, result.Trailing())
}

func TestParser_InputSliceIsNotMutated(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--all", WithShort("a"), WithType(Standalone)),
		MustOption("--brief", WithShort("b"), WithType(Standalone)),
	})
	require.Nil(t, err)

	args := []string{"-ab", "rest"}
	_, err = parser.Parse(args)
	require.Nil(t, err)
	assert.Equal(t, []string{"-ab", "rest"}, args, "cluster expansion should not leak into the caller's slice")
}

func TestParser_ConcurrentReuse(t *testing.T) {
	parser, err := NewParser([]*Option{
		MustOption("--level", WithShort("l"), WithType(Numeric)),
		MustOption("--verbose", WithType(Standalone)),
	})
	require.Nil(t, err)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			result, e := parser.Parse([]string{"-l5", "--verbose"})
			if e == nil {
				_, e = result.GetInt("level")
			}
			done <- e
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Nil(t, <-done, "a registry is read-only after construction and safe for concurrent parses")
	}
}
