// Package flags provides helpers for binding yes/no toggle flags to Cobra commands.
package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValueConstant  = "true"
	toggleFalseCanonicalValueConstant = "false"
	toggleParseErrorTemplateConstant  = "invalid toggle value %q"
	toggleTrueUsagePlaceholder        = "<YES|no>"
	toggleFalseUsagePlaceholder       = "<yes|NO>"
)

var (
	toggleTrueLiterals  = map[string]struct{}{"true": {}, "yes": {}, "on": {}, "1": {}, "t": {}, "y": {}}
	toggleFalseLiterals = map[string]struct{}{"false": {}, "no": {}, "off": {}, "0": {}, "f": {}, "n": {}}
)

// AddToggleFlag registers a boolean flag that accepts yes/no style values and
// defaults to true when supplied without a value.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	toggleValue := newToggleFlagValue(defaultValue, target)
	if len(shorthand) > 0 {
		flagSet.VarP(toggleValue, name, shorthand, usage)
	} else {
		flagSet.Var(toggleValue, name, usage)
	}

	registeredFlag := flagSet.Lookup(name)
	if registeredFlag == nil {
		return
	}
	registeredFlag.NoOptDefVal = toggleTrueCanonicalValueConstant
	registeredFlag.Usage = formatToggleUsage(usage, defaultValue)
}

func formatToggleUsage(description string, defaultValue bool) string {
	placeholder := toggleFalseUsagePlaceholder
	if defaultValue {
		placeholder = toggleTrueUsagePlaceholder
	}
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf("`%s`", placeholder)
	}
	return fmt.Sprintf("`%s` %s", placeholder, trimmedDescription)
}

type toggleFlagValue struct {
	currentValue bool
	target       *bool
}

func newToggleFlagValue(defaultValue bool, target *bool) *toggleFlagValue {
	if target != nil {
		*target = defaultValue
	}
	return &toggleFlagValue{currentValue: defaultValue, target: target}
}

func (value *toggleFlagValue) Set(rawValue string) error {
	parsedValue, parseError := parseToggleValue(rawValue)
	if parseError != nil {
		return parseError
	}
	value.currentValue = parsedValue
	if value.target != nil {
		*value.target = parsedValue
	}
	return nil
}

func (value *toggleFlagValue) String() string {
	if value != nil && value.currentValue {
		return toggleTrueCanonicalValueConstant
	}
	return toggleFalseCanonicalValueConstant
}

func (value *toggleFlagValue) Type() string {
	return "bool"
}

func parseToggleValue(rawValue string) (bool, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	if len(normalizedValue) == 0 {
		return true, nil
	}
	if _, isTrue := toggleTrueLiterals[normalizedValue]; isTrue {
		return true, nil
	}
	if _, isFalse := toggleFalseLiterals[normalizedValue]; isFalse {
		return false, nil
	}
	return false, fmt.Errorf(toggleParseErrorTemplateConstant, rawValue)
}
