package model

import (
	"fmt"
	"strings"
)

type Channel byte

const (
	Red Channel = iota
	Green
	Blue
)

var channelNames = [...]string{Red: "R", Green: "G", Blue: "B"}

func (c Channel) String() string {
	if c > Blue {
		return fmt.Sprintf("Channel(%d)", byte(c))
	}
	return channelNames[c]
}

func (c Channel) Valid() bool {
	return c <= Blue
}

func ParseChannel(s string) (Channel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "R", "RED":
		return Red, nil
	case "G", "GREEN":
		return Green, nil
	case "B", "BLUE":
		return Blue, nil
	}
	return 0, fmt.Errorf("%w: unknown channel %q, expected R, G or B", ErrInvalidParameter, s)
}

// ChannelMask is the set of color channels used for embedding, alpha can never be part of it
type ChannelMask byte

const (
	MaskRed   ChannelMask = 1 << Red
	MaskGreen ChannelMask = 1 << Green
	MaskBlue  ChannelMask = 1 << Blue
	MaskRGB               = MaskRed | MaskGreen | MaskBlue
)

func (m ChannelMask) Valid() bool {
	return m != 0 && m&^MaskRGB == 0
}

func (m ChannelMask) Has(c Channel) bool {
	return m&(1<<c) != 0
}

// Channels returns the selected channels in the fixed R, G, B scan order
func (m ChannelMask) Channels() []Channel {
	channels := make([]Channel, 0, 3)
	for c := Red; c <= Blue; c++ {
		if m.Has(c) {
			channels = append(channels, c)
		}
	}
	return channels
}

func (m ChannelMask) Count() int {
	return len(m.Channels())
}

func (m ChannelMask) String() string {
	var sb strings.Builder
	for _, c := range m.Channels() {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ParseChannelMask accepts any combination of R, G and B such as "RGB", "rb" or "R,G". An empty string selects all
// three channels
func ParseChannelMask(s string) (ChannelMask, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return MaskRGB, nil
	}

	var mask ChannelMask
	for _, r := range s {
		switch r {
		case ',', ' ':
			continue
		}
		c, err := ParseChannel(string(r))
		if err != nil {
			return 0, err
		}
		mask |= 1 << c
	}
	if !mask.Valid() {
		return 0, fmt.Errorf("%w: channel mask must select at least one of R, G, B", ErrInvalidParameter)
	}
	return mask, nil
}

func (m ChannelMask) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *ChannelMask) UnmarshalText(text []byte) error {
	parsed, err := ParseChannelMask(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
