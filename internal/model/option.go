package model

import (
	"errors"
	"fmt"
)

// OptionKind names one of the lookup lists backing form autocompletes.
type OptionKind string

const (
	OptionTool  OptionKind = "tool"
	OptionBrand OptionKind = "brand"
	OptionRoom  OptionKind = "room"
	OptionUnit  OptionKind = "unit"
)

func ParseOptionKind(s string) (OptionKind, error) {
	switch OptionKind(s) {
	case OptionTool, OptionBrand, OptionRoom, OptionUnit:
		return OptionKind(s), nil
	}
	return "", errors.Join(ErrInvalidArgument, fmt.Errorf("unknown option kind %q", s))
}

// Option is a named lookup value. Append-only: the UI never edits or removes
// one.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
