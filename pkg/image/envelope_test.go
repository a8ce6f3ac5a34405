package image

import (
	"bytes"
	"errors"
	"pxsteg/pkg/model"
	"strings"
	"testing"
)

func TestFileEnvelope(t *testing.T) {
	testCases := []struct {
		name         string
		expectedName string
	}{
		{"notes.txt", "notes.txt"},
		{"a/b/c/notes.txt", "notes.txt"},
		{`C:\Users\someone\notes.txt`, "notes.txt"},
		{"../../etc/passwd", "passwd"},
		{"..", DefaultRecoveredFileName},
		{"", DefaultRecoveredFileName},
		{"dir/", "dir"},
	}
	for _, tc := range testCases {
		envelope, err := fileEnvelope(tc.name, []byte("content"))
		if err != nil {
			t.Fatalf("%q: %s", tc.name, err)
		}
		name, content, err := openFileEnvelope(envelope)
		if err != nil {
			t.Fatalf("%q: %s", tc.name, err)
		}
		if name != tc.expectedName || !bytes.Equal(content, []byte("content")) {
			t.Errorf("%q: expected %q, got %q with content %q", tc.name, tc.expectedName, name, content)
		}
	}
}

func TestFileEnvelopeNameTooLong(t *testing.T) {
	if _, err := fileEnvelope(strings.Repeat("n", 1<<16), nil); !errors.Is(err, model.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestOpenFileEnvelopeTruncated(t *testing.T) {
	for _, envelope := range [][]byte{nil, {0}, {0, 5, 'a', 'b'}} {
		if _, _, err := openFileEnvelope(envelope); !errors.Is(err, model.ErrCorruptPayload) {
			t.Errorf("Expected ErrCorruptPayload for %v, got %v", envelope, err)
		}
	}
}
