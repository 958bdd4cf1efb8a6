// Package scenario runs YAML described sequences of chain actions against
// a TestApp.
package scenario

import (
	"strings"

	"gopkg.in/yaml.v2"

	sdk "github.com/okx/testtube/types"
)

// ValidatorAccount names the genesis validator in signer fields.
const ValidatorAccount = "validator"

// Scenario is the content of a scenario file.
type Scenario struct {
	Accounts []Account `yaml:"accounts"`
	Steps    []Step    `yaml:"steps"`
}

// Account is funded with Coins when the scenario starts. Other fields
// refer to its address as $<name>.
type Account struct {
	Name  string `yaml:"name"`
	Coins string `yaml:"coins"`
}

type Step struct {
	Name   string            `yaml:"name"`
	Action string            `yaml:"action"`
	Signer string            `yaml:"signer"`
	Args   map[string]string `yaml:"args"`
	// ExpectError makes the step pass only if it fails with an error
	// containing this text.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Parse decodes and validates a scenario file.
func Parse(content []byte) (*Scenario, error) {
	if len(strings.TrimSpace(string(content))) == 0 {
		return nil, ErrEmptyContent
	}
	var s Scenario
	if err := yaml.UnmarshalStrict(content, &s); err != nil {
		return nil, ErrUnmarshalYAML.Wrapf("%s", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s Scenario) Validate() error {
	names := map[string]struct{}{ValidatorAccount: {}}
	for i, acc := range s.Accounts {
		if acc.Name == "" {
			return ErrInvalidAccount.Wrapf("account %d has no name", i)
		}
		if _, ok := names[acc.Name]; ok {
			return ErrInvalidAccount.Wrapf("duplicate account %s", acc.Name)
		}
		names[acc.Name] = struct{}{}
		coins, err := sdk.ParseCoins(acc.Coins)
		if err != nil {
			return ErrInvalidAccount.Wrapf("%s: %s", acc.Name, err)
		}
		if len(coins) == 0 {
			return ErrInvalidAccount.Wrapf("%s has no coins", acc.Name)
		}
	}

	for i, step := range s.Steps {
		name := step.Name
		if name == "" {
			name = step.Action
		}
		a, ok := actions[step.Action]
		if !ok {
			return ErrUnknownAction.Wrapf("step %d (%s): %q", i, name, step.Action)
		}
		if !a.signed {
			continue
		}
		if step.Signer == "" {
			return ErrInvalidStep.Wrapf("step %d (%s): %s needs a signer", i, name, step.Action)
		}
		if _, ok := names[step.Signer]; !ok {
			return ErrInvalidStep.Wrapf("step %d (%s): unknown signer %s", i, name, step.Signer)
		}
	}
	return nil
}
