package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_String(t *testing.T) {
	tests := []struct {
		c     Category
		name  string
		title string
	}{
		{Delimiter, "delimiter", "Delimiter"},
		{OutputFormat, "output-format", "Output Format"},
		{Condition, "condition", "Condition"},
		{Imitate, "imitate", "Imitate"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.c.String())
		assert.Equal(t, tt.title, tt.c.Title())
	}
	assert.Equal(t, "Category(9)", Category(9).String())
	assert.Len(t, Categories(), 4)
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCategory("  Output-Format ")
	require.NoError(t, err)
	assert.Equal(t, OutputFormat, got)

	_, err = ParseCategory("summarize")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategory_Text(t *testing.T) {
	b, err := Condition.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "condition", string(b))

	var c Category
	require.NoError(t, c.UnmarshalText([]byte("imitate")))
	assert.Equal(t, Imitate, c)

	_, err = Category(-1).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Error(t, c.UnmarshalText([]byte("nope")))
}
