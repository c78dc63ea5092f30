// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// FlagParser provides common flag extraction patterns. Every error it
// returns is a usage error, except malformed dates which are validation
// errors like their HTTP counterparts.
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// Changed reports whether the flag was given on the command line
func (p *FlagParser) Changed(flagName string) bool {
	return p.cmd.Flags().Changed(flagName)
}

// ParseID extracts the record id from --id
func (p *FlagParser) ParseID() (string, error) {
	return p.ParseString("id")
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", cli.Usage(fmt.Errorf("failed to parse %s flag: %w", flagName, err))
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", cli.Usage(fmt.Errorf("--%s is required", flagName))
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) string {
	value, _ := p.cmd.Flags().GetString(flagName)
	return value
}

// StringPtr is nil unless the flag was given
func (p *FlagParser) StringPtr(flagName string) *string {
	if !p.Changed(flagName) {
		return nil
	}
	value := p.ParseStringOptional(flagName)
	return &value
}

// ParseDate extracts an optional YYYY-MM-DD flag, absent is the zero date
func (p *FlagParser) ParseDate(flagName string) (models.Date, error) {
	d, err := models.ParseDate(p.ParseStringOptional(flagName))
	if err != nil {
		return models.Date{}, models.Invalid(strings.ReplaceAll(flagName, "-", "_"), err)
	}
	return d, nil
}

// DatePtr is ParseDate for patches, nil unless the flag was given
func (p *FlagParser) DatePtr(flagName string) (*models.Date, error) {
	if !p.Changed(flagName) {
		return nil, nil
	}
	d, err := p.ParseDate(flagName)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseFloat extracts a float flag
func (p *FlagParser) ParseFloat(flagName string) (float64, error) {
	value, err := p.cmd.Flags().GetFloat64(flagName)
	if err != nil {
		return 0, cli.Usage(fmt.Errorf("failed to parse %s flag: %w", flagName, err))
	}
	return value, nil
}

// FloatPtr is nil unless the flag was given
func (p *FlagParser) FloatPtr(flagName string) (*float64, error) {
	if !p.Changed(flagName) {
		return nil, nil
	}
	value, err := p.ParseFloat(flagName)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// ParseIntOptional extracts an optional int flag
func (p *FlagParser) ParseIntOptional(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, cli.Usage(fmt.Errorf("failed to parse %s flag: %w", flagName, err))
	}
	return value, nil
}

// IntPtr is nil unless the flag was given
func (p *FlagParser) IntPtr(flagName string) (*int, error) {
	if !p.Changed(flagName) {
		return nil, nil
	}
	value, err := p.ParseIntOptional(flagName)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) bool {
	value, _ := p.cmd.Flags().GetBool(flagName)
	return value
}

// BoolPtr is nil unless the flag was given
func (p *FlagParser) BoolPtr(flagName string) *bool {
	if !p.Changed(flagName) {
		return nil
	}
	value := p.ParseBool(flagName)
	return &value
}

// ParseStrings extracts a repeatable or comma separated string flag
func (p *FlagParser) ParseStrings(flagName string) []string {
	values, _ := p.cmd.Flags().GetStringSlice(flagName)
	return values
}

// StringsPtr is nil unless the flag was given
func (p *FlagParser) StringsPtr(flagName string) *[]string {
	if !p.Changed(flagName) {
		return nil
	}
	values := p.ParseStrings(flagName)
	if values == nil {
		values = []string{}
	}
	return &values
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool) {
	return p.ParseBool("json"), p.ParseBool("quiet")
}

// EnumPtr converts an optional string flag to an enum type
func EnumPtr[E ~string](p *FlagParser, flagName string) *E {
	s := p.StringPtr(flagName)
	if s == nil {
		return nil
	}
	e := E(*s)
	return &e
}
