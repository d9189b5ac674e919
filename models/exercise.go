package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar format used in responses, e.g. "Mon Jan 15 2024".
const DateLayout = "Mon Jan 02 2006"

// dateInputLayouts are the accepted forms for client-supplied dates.
var dateInputLayouts = []string{"2006-01-02", DateLayout}

type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Description string             `bson:"description" json:"description"`
	Duration    int                `bson:"duration" json:"duration"`
	Date        time.Time          `bson:"date" json:"-"`
}

// DateString renders the exercise date without a time component.
func (e *Exercise) DateString() string {
	return e.Date.Format(DateLayout)
}

// ParseDate parses a client-supplied calendar date and truncates it to
// midnight UTC.
func ParseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateInputLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(value))
		if err == nil {
			return Midnight(t), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Midnight drops the time-of-day component.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FlexInt is an int that also accepts a quoted numeric string in JSON bodies,
// since form submissions and some clients send duration as "30".
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid integer value %q", string(data))
	}
	*f = FlexInt(n)
	return nil
}

type CreateExerciseRequest struct {
	Description string  `json:"description" form:"description" validate:"required,max=500"`
	Duration    FlexInt `json:"duration" form:"duration" validate:"required,gt=0"`
	Date        string  `json:"date" form:"date" validate:"omitempty,exercisedate"`
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type ExerciseLog struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []LogEntry `json:"log"`
}
