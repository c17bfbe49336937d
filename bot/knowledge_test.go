package bot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeQAFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "q_and_a.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadQAPairs(t *testing.T) {
	path := writeQAFile(t, `Q: How do I add a task?
A: Use the input field and press Add.

Q: How do I delete a task?
A: Press the Delete button.
`)

	pairs, err := LoadQAPairs(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "How do I add a task?", pairs[0].Question)
	assert.Equal(t, "Use the input field and press Add.", pairs[0].Answer)
	assert.Equal(t, "Press the Delete button.", pairs[1].Answer)
}

func TestLoadQAPairsDropsTrailingQuestion(t *testing.T) {
	path := writeQAFile(t, `Q: First?
A: First answer.
Q: Dangling question without an answer
`)

	pairs, err := LoadQAPairs(path)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "First answer.", pairs[0].Answer)
}

func TestLoadQAPairsMissingFile(t *testing.T) {
	_, err := LoadQAPairs(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestMatchAnswer(t *testing.T) {
	pairs := []QAPair{
		{Question: "How do I delete a task?", Answer: "Press Delete."},
		{Question: "How do I complete a task?", Answer: "Press Complete."},
	}

	t.Run("keyword match is case-insensitive", func(t *testing.T) {
		answer, ok := MatchAnswer(pairs, "DELETE something please", DefaultMinTokenLen)
		require.True(t, ok)
		assert.Equal(t, "Press Delete.", answer)
	})

	t.Run("first matching pair wins", func(t *testing.T) {
		// "task" appears in both stored questions
		answer, ok := MatchAnswer(pairs, "tell me about task handling", DefaultMinTokenLen)
		require.True(t, ok)
		assert.Equal(t, "Press Delete.", answer)
	})

	t.Run("short tokens do not count", func(t *testing.T) {
		// every token here is 3 characters or fewer
		_, ok := MatchAnswer(pairs, "how do i", DefaultMinTokenLen)
		assert.False(t, ok)
	})

	t.Run("no overlap", func(t *testing.T) {
		_, ok := MatchAnswer(pairs, "weather forecast tomorrow", DefaultMinTokenLen)
		assert.False(t, ok)
	})

	t.Run("threshold is configurable", func(t *testing.T) {
		// with a lower threshold a 3-character token matches
		// ("how" is a substring of both stored questions)
		answer, ok := MatchAnswer(pairs, "how", 2)
		require.True(t, ok)
		assert.Equal(t, "Press Delete.", answer)
	})
}

func TestCorpusContext(t *testing.T) {
	pairs := []QAPair{
		{Question: "One?", Answer: "First."},
		{Question: "Two?", Answer: "Second."},
	}
	assert.Equal(t, "Q: One?\nA: First.\nQ: Two?\nA: Second.", CorpusContext(pairs))
}
