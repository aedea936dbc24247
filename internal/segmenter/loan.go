package segmenter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	borrowerIndividual = "Individual"

	rateFixed    = "Fixed"
	rateFloating = "Floating"
	rateDual     = "Dual"
)

var (
	ownSourcePattern     = regexp.MustCompile(`\bown\b`)
	negatedSourcePattern = regexp.MustCompile(`\bother than own\b|\bnot own\b`)
)

// loanRecord holds the columns the segmentation depends on. Every other
// column is carried through untouched in the exported tables.
type loanRecord struct {
	Charges         chargeAmount `csv:"Prepayment/ Foreclosure Charges"`
	Borrower        string       `csv:"Borrower Category (Individual, Non-Individual, Employee)"`
	ClosureDate     closureDate  `csv:"Date of Loan Closure in the system/ books"`
	SanctionedROI   string       `csv:"Sanctioned ROI Type (Fixed, Floating, Special, Dual)"`
	ROIBeforeCutoff string       `csv:"Type of ROI on 31.03.24 (Fixed/Floating/ Dual)"`
	ROIAfterCutoff  string       `csv:"Type of ROI on 31.03.25 (Fixed/Floating/ Dual)"`
	LoanCategory    string       `csv:"Loan Category Sanctioned (Housing or Non-Housing)"`
	Source          string       `csv:"Source of Prepayment/ Foreclosure"`
}

// charged reports whether a prepayment charge was applied. Only an explicit
// zero counts as not charged.
func (r *loanRecord) charged() bool {
	return !r.Charges.valid || r.Charges.amount != 0
}

func (r *loanRecord) individual() bool {
	return r.Borrower == borrowerIndividual
}

// effectiveRate resolves a dual rate into the rate type in force on the
// closure date. Records without a closure date resolve to nothing.
func (r *loanRecord) effectiveRate(cutoff time.Time) string {
	if r.SanctionedROI != rateDual {
		return r.SanctionedROI
	}

	if !r.ClosureDate.valid {
		return ""
	}

	if r.ClosureDate.time.After(cutoff) {
		return r.ROIAfterCutoff
	}

	return r.ROIBeforeCutoff
}

func (r *loanRecord) housing() bool {
	switch strings.ToLower(strings.TrimSpace(r.LoanCategory)) {
	case "housing", "hl":
		return true
	default:
		return false
	}
}

// ownSource reports whether the prepayment was funded from the borrower's
// own sources.
func (r *loanRecord) ownSource() bool {
	source := strings.ToLower(strings.TrimSpace(r.Source))
	return ownSourcePattern.MatchString(source) && !negatedSourcePattern.MatchString(source)
}

type chargeAmount struct {
	amount float64
	valid  bool
}

func (c *chargeAmount) UnmarshalCSV(data []byte) error {
	n, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		*c = chargeAmount{}
		return nil
	}

	*c = chargeAmount{amount: n, valid: true}
	return nil
}

var closureDateLayouts = []string{
	time.RFC3339,
	time.DateOnly,
	time.DateTime,
	"02-01-2006",
	"02.01.2006",
	"02/01/2006",
	"02-Jan-2006",
	"02-Jan-06",
}

type closureDate struct {
	time  time.Time
	valid bool
}

func (d *closureDate) UnmarshalCSV(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" {
		*d = closureDate{}
		return nil
	}

	for _, layout := range closureDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = closureDate{time: t, valid: true}
			return nil
		}
	}

	// Workbook cells without a date style arrive as serial numbers.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return fmt.Errorf("invalid closure date %q: %w", s, err)
		}
		*d = closureDate{time: t, valid: true}
		return nil
	}

	return fmt.Errorf("invalid closure date %q", s)
}
