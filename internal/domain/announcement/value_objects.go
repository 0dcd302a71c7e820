package announcement

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyText         = errors.New("announcement text cannot be empty")
	ErrTextTooLong       = errors.New("announcement text exceeds maximum length")
	ErrInvalidIconType   = errors.New("invalid icon type")
	ErrInvalidColorToken = errors.New("invalid color token format")
	ErrInvalidWindow     = errors.New("announcement window start must not be after end")
)

const MaxTextLength = 200

type IconType string

const (
	IconTruck    IconType = "TRUCK"
	IconSparkles IconType = "SPARKLES"
	IconStar     IconType = "STAR"
)

func NewIconType(s string) (IconType, error) {
	icon := IconType(strings.ToUpper(strings.TrimSpace(s)))
	switch icon {
	case IconTruck, IconSparkles, IconStar:
		return icon, nil
	default:
		return "", ErrInvalidIconType
	}
}

func (i IconType) String() string {
	return string(i)
}

var colorTokenRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ColorToken is the ticker accent color, e.g. "#FAB005".
type ColorToken string

func NewColorToken(s string) (ColorToken, error) {
	s = strings.TrimSpace(s)
	if !colorTokenRegex.MatchString(s) {
		return "", ErrInvalidColorToken
	}
	return ColorToken(strings.ToUpper(s)), nil
}

func (c ColorToken) String() string {
	return string(c)
}

type Text struct {
	value string
}

func NewText(s string) (Text, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Text{}, ErrEmptyText
	}
	if len(s) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{value: s}, nil
}

func (t Text) String() string {
	return t.value
}
