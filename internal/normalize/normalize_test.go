package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "Python", Clean("  Python  "))
	assert.Equal(t, "", Clean("   "))
	assert.Equal(t, "", Clean(""))
	// Casing is preserved: storage identity is the trimmed original.
	assert.Equal(t, "PYTHON", Clean("PYTHON"))
}

func TestCleanList(t *testing.T) {
	got := CleanList([]string{" Go ", "", "Go", "  ", "Python", "go"})

	// Exact-string dedup only; "Go" and "go" stay distinct.
	assert.Equal(t, []string{"Go", "Python", "go"}, got)
}

func TestCleanListEmpty(t *testing.T) {
	assert.Empty(t, CleanList(nil))
	assert.Empty(t, CleanList([]string{"", "  "}))
}

func TestSplitSkills(t *testing.T) {
	got := SplitSkills([]string{"Python, SQL", "Docker"})
	assert.Equal(t, []string{"Python", "SQL", "Docker"}, got)
}

func TestSplitSkillsDropsEmptyTokens(t *testing.T) {
	got := SplitSkills([]string{"Python,, SQL ,", " ,Docker", "SQL"})
	assert.Equal(t, []string{"Python", "SQL", "Docker"}, got)
}

func TestFoldSet(t *testing.T) {
	got := FoldSet([]string{"Python", "SQL", "python"})
	assert.Equal(t, []string{"python", "sql"}, got)
}
