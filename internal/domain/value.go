package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type Kind int

const (
	KindMissing Kind = iota
	KindNumber
	KindText
	KindDate
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// naTokens are the cell contents treated as missing, matching what
// spreadsheet tooling commonly writes for absent values.
var naTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

type Value struct {
	Kind Kind
	Num  float64
	Text string
	Time time.Time
}

func Missing() Value {
	return Value{Kind: KindMissing}
}

func Number(n float64) Value {
	if math.IsNaN(n) {
		return Missing()
	}
	return Value{Kind: KindNumber, Num: n}
}

func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

func Date(t time.Time) Value {
	return Value{Kind: KindDate, Time: t}
}

// ParseValue coerces raw cell text into a Value. It never fails: anything
// that is neither an NA token nor a number is kept as text.
func ParseValue(raw string) Value {
	s := strings.TrimSpace(raw)
	if _, ok := naTokens[s]; ok {
		return Missing()
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(n, 0) {
		return Number(n)
	}

	return Text(raw)
}

func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

func (v Value) IsNumber() bool {
	return v.Kind == KindNumber
}

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindText:
		return v.Text
	case KindDate:
		if v.Time.Hour() == 0 && v.Time.Minute() == 0 && v.Time.Second() == 0 {
			return v.Time.Format(dateLayout)
		}
		return v.Time.Format(dateTimeLayout)
	default:
		return ""
	}
}
