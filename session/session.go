package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/dataset"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/domain/filter"
	"bikeshare/prompt"
	"bikeshare/reports"
	"bikeshare/utils"
)

const (
	sessionType       = "session"
	rawDataQuestion   = "Would you like to see some raw data ?\npress Enter for yes, type \"no\" otherwise"
	moreRowsQuestion  = "press Enter for more rows, type \"no\" otherwise"
	restartQuestion   = "\nWould you like to restart? Enter yes or no."
	noMoreRowsMessage = "All the trips were displayed."
)

// TripLoader loads the trips matching a Criteria
type TripLoader interface {
	Load(criteria filter.Criteria) (*dataset.TripSet, error)
}

// Session asks for filters, prints the statistics of the matching trips, offers the raw rows
// and repeats until the user declines to restart
type Session struct {
	config    *config.Config
	loader    TripLoader
	prompter  *prompt.Prompter
	reporter  *reports.Reporter
	out       io.Writer
	sessionID string
}

func NewSession(cfg *config.Config, loader TripLoader, prompter *prompt.Prompter, reporter *reports.Reporter, out io.Writer) *Session {
	return &Session{
		config:   cfg,
		loader:   loader,
		prompter: prompter,
		reporter: reporter,
		out:      out,
	}
}

func (s *Session) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][session: %s][method: %s][status: ERROR] %s: %s", sessionType, s.sessionID, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][session: %s][method: %s][status: OK] %s", sessionType, s.sessionID, method, message)
}

// Run loops over analysis passes until the user does not want to restart, the input ends or ctx is done.
// The end of the input is not an error
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.sessionID = uuid.NewString()
		restart, err := s.runIteration()
		if errors.Is(err, dataErrors.ErrInputClosed) {
			log.Info(s.getLogMessage("Run", "input closed, finishing", nil))
			return nil
		}
		if err != nil {
			log.Error(s.getLogMessage("Run", "analysis failed", err))
			return err
		}

		if !restart {
			log.Debug(s.getLogMessage("Run", "finish session", nil))
			return nil
		}
	}
}

// runIteration does one analysis pass. The trips are loaded again on every pass
func (s *Session) runIteration() (bool, error) {
	criteria, err := s.prompter.GetFilters()
	if err != nil {
		return false, err
	}
	log.Info(s.getLogMessage("runIteration", fmt.Sprintf("filters: %s", criteria), nil))

	tripSet, err := s.loader.Load(criteria)
	if err != nil {
		return false, err
	}

	if tripSet.IsEmpty() {
		fmt.Fprintf(s.out, "No trips found for %s, month: %s, day: %s.\n", criteria.City(), criteria.Month(), criteria.Day())
		fmt.Fprintln(s.out, prompt.Separator)
	} else {
		s.reporter.Report(tripSet)

		err = s.showRawData(tripSet)
		if err != nil {
			return false, err
		}
	}

	return s.prompter.Confirm(restartQuestion)
}

// showRawData prints the first rows of tripSet, page size more on every request, until the user answers "no"
// or every row was shown
func (s *Session) showRawData(tripSet *dataset.TripSet) error {
	rawDataPager := newPager(tripSet.Len(), s.config.PageSize)

	answer, err := s.prompter.Ask(rawDataQuestion)
	for {
		if err != nil {
			return err
		}
		if utils.NormalizeInput(answer) == "no" {
			return nil
		}

		rows, ok := rawDataPager.next()
		if !ok {
			fmt.Fprintln(s.out, noMoreRowsMessage)
			return nil
		}
		s.printRows(tripSet.Header(), tripSet.Page(rows))
		log.Debug(s.getLogMessage("showRawData", fmt.Sprintf("%v rows displayed", rows), nil))

		if rawDataPager.done() {
			fmt.Fprintln(s.out, noMoreRowsMessage)
			return nil
		}
		answer, err = s.prompter.Ask(moreRowsQuestion)
	}
}

func (s *Session) printRows(header []string, rows [][]string) {
	writer := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	_ = writer.Flush()
}
