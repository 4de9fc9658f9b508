package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Color channels are in the 0..1 range used by the Docs API.
type Color struct {
	Red   float64 `yaml:"red"`
	Green float64 `yaml:"green"`
	Blue  float64 `yaml:"blue"`
}

// ParseHexColor accepts "#RRGGBB" or "RRGGBB".
func ParseHexColor(s string) (*Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return &Color{
		Red:   float64(v>>16&0xff) / 255,
		Green: float64(v>>8&0xff) / 255,
		Blue:  float64(v&0xff) / 255,
	}, nil
}

type TextFormat struct {
	Bold   bool    `yaml:"bold"`
	Italic bool    `yaml:"italic"`
	Size   float64 `yaml:"size"`
	Color  *Color  `yaml:"color"`
}

func (f TextFormat) IsZero() bool {
	return !f.Bold && !f.Italic && f.Size == 0 && f.Color == nil
}

type FileRef struct {
	ID          string
	Name        string
	MimeType    string
	Parents     []string
	WebViewLink string
}
