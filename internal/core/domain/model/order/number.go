package order

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"laundry/internal/pkg/errs"
)

const (
	numberPrefix    = "LD"
	numberDateFmt   = "20060102"
	maxDailyOrdinal = 999_999
)

var numberPattern = regexp.MustCompile(`^LD-(\d{8})-(\d{6})$`)

// Number is the human-readable order number, LD-YYYYMMDD-NNNNNN. The ordinal
// grows monotonically within a calendar day (UTC) and the number never changes
// once issued.
type Number struct {
	day     time.Time
	ordinal int64
}

// NewNumber builds the number for the ordinal-th order placed on day.
func NewNumber(day time.Time, ordinal int64) (Number, error) {
	if ordinal < 1 || ordinal > maxDailyOrdinal {
		return Number{}, errs.NewValueIsOutOfRangeError("ordinal", ordinal, 1, maxDailyOrdinal)
	}
	y, m, d := day.UTC().Date()
	return Number{day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), ordinal: ordinal}, nil
}

// ParseNumber reads a number previously produced by String.
func ParseNumber(s string) (Number, error) {
	match := numberPattern.FindStringSubmatch(s)
	if match == nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%q does not match LD-YYYYMMDD-NNNNNN", s))
	}
	day, err := time.Parse(numberDateFmt, match[1])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("number", err)
	}
	ordinal, _ := strconv.ParseInt(match[2], 10, 64)
	return NewNumber(day, ordinal)
}

func (n Number) String() string {
	return fmt.Sprintf("%s-%s-%06d", numberPrefix, n.day.Format(numberDateFmt), n.ordinal)
}

// Day is the UTC calendar day the number belongs to.
func (n Number) Day() time.Time {
	return n.day
}

func (n Number) Ordinal() int64 {
	return n.ordinal
}

func (n Number) IsZero() bool {
	return n.ordinal == 0
}
