package image

import (
	"encoding/binary"
	"fmt"
	"math"
	"path"
	"pxsteg/pkg/model"
	"strings"
)

const DefaultRecoveredFileName = "recovered.bin"

// sanitizeFileName keeps only the base name so a revealed file can never be written outside the target directory
func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}

// fileEnvelope prefixes content with its file name: name length (uint16 BE) | name | content
func fileEnvelope(name string, content []byte) ([]byte, error) {
	name = sanitizeFileName(name)
	if len(name) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: file name is %d bytes long, the maximum is %d", model.ErrInvalidParameter, len(name), math.MaxUint16)
	}
	envelope := make([]byte, 0, 2+len(name)+len(content))
	envelope = binary.BigEndian.AppendUint16(envelope, uint16(len(name)))
	envelope = append(envelope, name...)
	return append(envelope, content...), nil
}

func openFileEnvelope(envelope []byte) (string, []byte, error) {
	if len(envelope) < 2 {
		return "", nil, fmt.Errorf("%w: file envelope too short", model.ErrCorruptPayload)
	}
	nameLength := int(binary.BigEndian.Uint16(envelope))
	if len(envelope) < 2+nameLength {
		return "", nil, fmt.Errorf("%w: file name length %d exceeds the payload", model.ErrCorruptPayload, nameLength)
	}

	name := sanitizeFileName(string(envelope[2 : 2+nameLength]))
	if name == "" {
		name = DefaultRecoveredFileName
	}
	return name, envelope[2+nameLength:], nil
}
