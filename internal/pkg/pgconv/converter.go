package pgconv

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func Int32PtrFromPgtype(pi pgtype.Int4) *int32 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int32
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

// DateFromPgtype formats a DATE column as YYYY-MM-DD; NULL becomes "".
func DateFromPgtype(pd pgtype.Date) string {
	if !pd.Valid {
		return ""
	}
	return pd.Time.Format(DateLayout)
}

func DatePtrFromPgtype(pd pgtype.Date) *string {
	if !pd.Valid {
		return nil
	}
	s := pd.Time.Format(DateLayout)
	return &s
}

// TimeOfDayFromPgtype formats a TIME column as HH:MM:SS.
func TimeOfDayFromPgtype(pt pgtype.Time) string {
	if !pt.Valid {
		return ""
	}
	secs := pt.Microseconds / int64(time.Second/time.Microsecond)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

func ParseDate(s string) (pgtype.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return pgtype.Date{}, ErrInvalidDate
	}
	return DateToPgtype(t), nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
