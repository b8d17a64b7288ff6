package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_BasicPatterns(t *testing.T) {
	rules := Compile([]string{"*.log", "build/"})

	assert.True(t, rules.Ignored("debug.log", false))
	assert.True(t, rules.Ignored("sub/debug.log", false), "name patterns apply at any depth")
	assert.False(t, rules.Ignored("debug.txt", false))
}

func TestCompile_NegationLastMatchWins(t *testing.T) {
	rules := Compile([]string{"*.txt", "!docs/*.txt"})

	assert.True(t, rules.Ignored("notes.txt", false))
	assert.False(t, rules.Ignored("docs/readme.txt", false), "negation later in the list must win")
}

func TestCompile_OrderMatters(t *testing.T) {
	// Same lines, reversed: the exclusion now outranks the negation.
	rules := Compile([]string{"!docs/*.txt", "*.txt"})

	assert.True(t, rules.Ignored("docs/readme.txt", false))
}

func TestCompile_DirectoryOnlyPattern(t *testing.T) {
	rules := Compile([]string{"build/"})

	assert.True(t, rules.Ignored("build", true))
	assert.False(t, rules.Ignored("build", false), "trailing-slash patterns never match files")
}

func TestCompile_AnchoredPattern(t *testing.T) {
	rules := Compile([]string{"/build"})

	assert.True(t, rules.Ignored("build", true))
	assert.False(t, rules.Ignored("sub/build", true), "leading slash anchors at the root")
}

func TestCompile_CommentsAndBlanks(t *testing.T) {
	rules := Compile([]string{"# a comment", "", "*.tmp"})

	assert.True(t, rules.Ignored("a.tmp", false))
	assert.False(t, rules.Ignored("# a comment", false))
}

func TestCompile_Empty(t *testing.T) {
	rules := Compile(nil)

	assert.False(t, rules.Ignored("anything", false))
	assert.False(t, rules.Ignored("dir", true))
}

func TestIgnored_RootNeverIgnored(t *testing.T) {
	rules := Compile([]string{"*"})

	assert.False(t, rules.Ignored("", true))
	assert.False(t, rules.Ignored(".", true))
}

func TestIgnored_NilRuleSet(t *testing.T) {
	var rules *RuleSet
	assert.False(t, rules.Ignored("anything", false))
}

func TestReadRuleFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".gitignore"), []byte("*.log\nbuild/\n"), 0o644))

	lines := ReadRuleFile(tmpDir, ".gitignore")
	require.NotEmpty(t, lines)
	assert.Equal(t, "*.log", lines[0])
	assert.Equal(t, "build/", lines[1])
}

func TestReadRuleFile_Missing(t *testing.T) {
	assert.Nil(t, ReadRuleFile(t.TempDir(), ".gitignore"))
}

func TestReadRuleFile_CustomName(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".walkignore"), []byte("vendor/\n"), 0o644))

	assert.Nil(t, ReadRuleFile(tmpDir, ".gitignore"))
	assert.NotEmpty(t, ReadRuleFile(tmpDir, ".walkignore"))
}
