// Package params loads study parameters for the miniproject commands:
// a YAML file first, then NUMETHODS_-prefixed environment variables on
// top, so a study can be re-run with tweaked values without editing the
// file:
//
//	NUMETHODS_STEPS=400 go run . -config config.yaml
package params

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override file values.
const EnvPrefix = "NUMETHODS_"

// Load reads the YAML file at path, applies environment overrides and
// unmarshals the result into out (a pointer to a struct with koanf tags).
// Env keys map to lowercase dotted config keys: NUMETHODS_STEPS → steps.
func Load(path string, out any) error {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("params: loading %s: %w", path, err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return fmt.Errorf("params: loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", out); err != nil {
		return fmt.Errorf("params: unmarshalling: %w", err)
	}

	return nil
}
