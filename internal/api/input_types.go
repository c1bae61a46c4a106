package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

var errDurationType = errors.New("duration must be a string or number")

type createUserInput struct {
	Username string `json:"username" form:"username"`
}

type exerciseInput struct {
	Description string `json:"description" form:"description"`
	Duration    string `json:"duration" form:"duration"`
	Date        string `json:"date" form:"date"`
}

// UnmarshalJSON accepts duration as either a JSON string or a JSON number.
func (input *exerciseInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		Description string          `json:"description"`
		Duration    json.RawMessage `json:"duration"`
		Date        string          `json:"date"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	input.Description = raw.Description
	input.Date = raw.Date
	input.Duration = ""

	duration := bytes.TrimSpace(raw.Duration)
	switch {
	case len(duration) == 0 || bytes.Equal(duration, []byte("null")):
	case duration[0] == '"':
		if err := json.Unmarshal(duration, &input.Duration); err != nil {
			return err
		}
	default:
		var number json.Number
		if err := json.Unmarshal(duration, &number); err != nil {
			return errDurationType
		}
		value, err := number.Float64()
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return errDurationType
		}
		input.Duration = strconv.FormatFloat(math.Trunc(value), 'f', 0, 64)
	}
	return nil
}

type userResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type exerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	ID       string             `json:"_id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []logEntryResponse `json:"log"`
}
