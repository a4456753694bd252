package domain

import (
	"fmt"
	"strings"
)

const DefaultInterpreter = "python3"

// Config holds the optional user configuration stored in ~/.vien.yaml
type Config struct {
	Interpreter string `yaml:"interpreter,omitempty"`
	PromptColor *bool  `yaml:"promptColor,omitempty"` // Using pointer to tell "unset" from "false"
}

func CreateDefaultConfig() *Config {
	promptColor := true
	return &Config{
		Interpreter: DefaultInterpreter,
		PromptColor: &promptColor,
	}
}

// DefaultInterpreter returns the interpreter used by create/recreate when none is given.
func (c *Config) DefaultInterpreter() string {
	if strings.TrimSpace(c.Interpreter) == "" {
		return DefaultInterpreter
	}
	return strings.TrimSpace(c.Interpreter)
}

// UsePromptColor reports whether the sub-shell prompt label should be coloured.
func (c *Config) UsePromptColor() bool {
	if c.PromptColor == nil {
		return true
	}
	return *c.PromptColor
}

func (c *Config) Validate() error {
	if strings.ContainsAny(c.Interpreter, "\n\r\t") {
		return fmt.Errorf("interpreter '%s' contains whitespace control characters", c.Interpreter)
	}
	return nil
}
