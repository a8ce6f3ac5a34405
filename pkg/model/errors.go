package model

import "errors"

// Every failed codec call wraps exactly one of these, callers match them with errors.Is
var (
	ErrCapacityExceeded       = errors.New("payload does not fit in the image with the requested bits per channel and channels")
	ErrInvalidParameter       = errors.New("invalid parameter")
	ErrNoHiddenData           = errors.New("no hidden data found in image")
	ErrCorruptPayload         = errors.New("hidden payload is corrupted")
	ErrDecryption             = errors.New("decryption failed, wrong password or tampered payload")
	ErrUnsupportedCombination = errors.New("hidden payload uses a format this build does not support")
)
