package model

import (
	"fmt"
	"strings"
)

type ErrorCorrectionLevel byte

const (
	ErrorCorrectionNone ErrorCorrectionLevel = iota
	ErrorCorrectionLow
	ErrorCorrectionMedium
	ErrorCorrectionHigh
)

var errorCorrectionNames = [...]string{
	ErrorCorrectionNone:   "none",
	ErrorCorrectionLow:    "low",
	ErrorCorrectionMedium: "medium",
	ErrorCorrectionHigh:   "high",
}

func (l ErrorCorrectionLevel) String() string {
	if !l.Valid() {
		return fmt.Sprintf("ErrorCorrectionLevel(%d)", byte(l))
	}
	return errorCorrectionNames[l]
}

func (l ErrorCorrectionLevel) Valid() bool {
	return l <= ErrorCorrectionHigh
}

func ParseErrorCorrectionLevel(s string) (ErrorCorrectionLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ErrorCorrectionNone, nil
	}
	for level, name := range errorCorrectionNames {
		if name == s {
			return ErrorCorrectionLevel(level), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown error correction level %q, expected none, low, medium or high", ErrInvalidParameter, s)
}

func (l ErrorCorrectionLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *ErrorCorrectionLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseErrorCorrectionLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
