package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/prompt"
)

func newPrompter(input string) (*prompt.Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return prompt.NewPrompter(strings.NewReader(input), out), out
}

func TestGetFilters_validAnswers(t *testing.T) {
	prompter, out := newPrompter("Chicago\nMarch\nMonday\n")

	criteria, err := prompter.GetFilters()

	require.NoError(t, err)
	assert.Equal(t, "chicago", criteria.City())
	assert.Equal(t, "march", criteria.Month())
	assert.Equal(t, "monday", criteria.Day())
	assert.Contains(t, out.String(), "Hello! Let's explore some US bikeshare data!")
	assert.Contains(t, out.String(), prompt.Separator)
}

func TestGetFilters_caseAndBlanksAreIgnored(t *testing.T) {
	prompter, _ := newPrompter("  NEW YORK CITY \r\nALL\nsUnDaY\n")

	criteria, err := prompter.GetFilters()

	require.NoError(t, err)
	assert.Equal(t, "new york city", criteria.City())
	assert.Equal(t, "all", criteria.Month())
	assert.Equal(t, "sunday", criteria.Day())
}

func TestAskCity_repromptsUntilValid(t *testing.T) {
	prompter, out := newPrompter("boston\n\nnew york\n")

	city, err := prompter.AskCity()

	require.NoError(t, err)
	assert.Equal(t, "new york", city)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid city, please try again"))
	assert.Equal(t, 3, strings.Count(out.String(), "Choose a city"))
}

func TestAskMonth_rejectsSecondHalfOfYear(t *testing.T) {
	prompter, out := newPrompter("july\ndecember\njune\n")

	month, err := prompter.AskMonth()

	require.NoError(t, err)
	assert.Equal(t, "june", month)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid month, please try again"))
}

func TestAskDay_repromptsUntilValid(t *testing.T) {
	prompter, out := newPrompter("mon\nfriday\n")

	day, err := prompter.AskDay()

	require.NoError(t, err)
	assert.Equal(t, "friday", day)
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid day, please try again"))
}

func TestAskCity_manyInvalidAnswers(t *testing.T) {
	input := strings.Repeat("nowhere\n", 10000) + "washington\n"
	prompter, _ := newPrompter(input)

	city, err := prompter.AskCity()

	require.NoError(t, err)
	assert.Equal(t, "washington", city)
}

func TestAskCity_inputClosed(t *testing.T) {
	prompter, _ := newPrompter("boston\n")

	_, err := prompter.AskCity()

	require.ErrorIs(t, err, dataErrors.ErrInputClosed)
}

func TestConfirm(t *testing.T) {
	prompter, out := newPrompter("YES\nno\n\n")

	restart, err := prompter.Confirm("Would you like to restart? Enter yes or no.")
	require.NoError(t, err)
	assert.True(t, restart)

	restart, err = prompter.Confirm("again?")
	require.NoError(t, err)
	assert.False(t, restart)

	restart, err = prompter.Confirm("again?")
	require.NoError(t, err)
	assert.False(t, restart)

	_, err = prompter.Confirm("again?")
	require.ErrorIs(t, err, dataErrors.ErrInputClosed)
	assert.Contains(t, out.String(), "Would you like to restart?")
}
