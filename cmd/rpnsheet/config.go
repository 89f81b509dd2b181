package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// applyConfigFile sets flags from a YAML file whose keys are flag names,
// e.g. "error-marker: N/A". Flags given on the command line take precedence.
func applyConfigFile(fs *pflag.FlagSet, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var values map[string]interface{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for name, value := range values {
		if name == "config" {
			return fmt.Errorf("%s: config files cannot include other config files", path)
		}
		flag := fs.Lookup(name)
		if flag == nil {
			return fmt.Errorf("%s: unknown setting %q", path, name)
		}
		if flag.Changed {
			continue
		}
		if err := fs.Set(name, fmt.Sprint(value)); err != nil {
			return fmt.Errorf("%s: %s: %w", path, name, err)
		}
	}
	return nil
}
