// Package prompt asks the user for the analysis filters on a line oriented console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/domain/filter"
	"bikeshare/utils"
)

const (
	greeting      = "Hello! Let's explore some US bikeshare data!"
	cityQuestion  = "Choose a city (Chicago - New York City - Washington)"
	monthQuestion = `Enter Month (from January to June or type "all"):`
	dayQuestion   = `Enter day of the week (or type "all"):`
)

// Separator printed between sections of the output
var Separator = strings.Repeat("-", 40)

// Prompter reads answers line by line from in and writes questions to out
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanLines)
	return &Prompter{
		scanner: scanner,
		out:     out,
	}
}

// ReadLine returns the next line without its terminator. ErrInputClosed is returned at the end of the input
func (p *Prompter) ReadLine() (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	}

	if err := p.scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return "", dataErrors.ErrInputClosed
}

// Ask prints question and returns the answer
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	return p.ReadLine()
}

// Confirm asks a yes or no question. Only "yes", in any case, is a positive answer
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return utils.NormalizeInput(answer) == "yes", nil
}

// AskCity asks until the answer is one of filter.Cities
func (p *Prompter) AskCity() (string, error) {
	return p.askValid(cityQuestion, "Invalid city, please try again", filter.Cities())
}

// AskMonth asks until the answer is one of filter.Months
func (p *Prompter) AskMonth() (string, error) {
	return p.askValid(monthQuestion, "Invalid month, please try again", filter.Months())
}

// AskDay asks until the answer is one of filter.Days
func (p *Prompter) AskDay() (string, error) {
	return p.askValid(dayQuestion, "Invalid day, please try again", filter.Days())
}

// GetFilters asks for the city, month and day to analyze
func (p *Prompter) GetFilters() (filter.Criteria, error) {
	fmt.Fprintln(p.out, greeting)

	city, err := p.AskCity()
	if err != nil {
		return filter.Criteria{}, err
	}

	month, err := p.AskMonth()
	if err != nil {
		return filter.Criteria{}, err
	}

	day, err := p.AskDay()
	if err != nil {
		return filter.Criteria{}, err
	}

	fmt.Fprintln(p.out, Separator)
	return filter.NewCriteria(city, month, day)
}

// askValid repeats question until the normalized answer belongs to valid. There is no bound on the
// amount of attempts, only the end of the input stops it
func (p *Prompter) askValid(question string, invalidMessage string, valid []string) (string, error) {
	for attempt := 1; ; attempt++ {
		answer, err := p.Ask(question)
		if err != nil {
			if !errors.Is(err, dataErrors.ErrInputClosed) {
				log.Errorf("[component: prompt][method: askValid][status: ERROR] %s", err.Error())
			}
			return "", err
		}

		answer = utils.NormalizeInput(answer)
		if utils.ContainsString(answer, valid) {
			return answer, nil
		}

		log.Debugf("[component: prompt][method: askValid] attempt %v rejected: %q", attempt, answer)
		fmt.Fprintln(p.out, invalidMessage)
		fmt.Fprintln(p.out)
	}
}
