package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tuidolist/internal/core/styles"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, themeExists),
		criterio.Run("data_dir", c.DataDir, notEmpty),
		c.validateKeys(),
	)
}

// ValidateDeep runs Validate and then checks the config file and data
// directory on disk. An empty configPath skips the config file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("data_file", c.DataFilePath(), isFileOrNotExist),
	)
}

func (c *Config) validateKeys() error {
	var errs criterio.FieldErrorsBuilder

	actions := make([]string, 0, len(c.Keys))
	for action := range c.Keys {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	for _, action := range actions {
		field := "keys." + action
		keys := c.Keys[action]

		if !isValidAction(action) {
			errs = errs.Append(field, fmt.Errorf("unknown action %q", action))
			continue
		}

		if len(keys) == 0 {
			errs = errs.Append(field, errors.New("at least one key is required"))
		}

		for i, k := range keys {
			if k == "" {
				errs = errs.Append(fmt.Sprintf("%s[%d]", field, i), errors.New("key cannot be empty"))
			}
		}
	}

	for _, action := range ActionNames() {
		if _, ok := c.Keys[action]; !ok {
			errs = errs.Append("keys."+action, errors.New("action has no binding"))
		}
	}

	for _, action := range formActions {
		for _, k := range c.Keys[action] {
			if isPrintableKey(k) {
				errs = errs.Append("keys."+action, fmt.Errorf("key %q is a printable character and would be typed into the form", k))
			}
		}
	}

	for _, group := range KeyGroups {
		seen := make(map[string]string)
		for _, action := range group.Actions {
			for _, k := range c.Keys[action] {
				if other, ok := seen[k]; ok && other != action {
					errs = errs.Append("keys."+action, fmt.Errorf("key %q is already bound to %q in %s mode", k, other, group.Name))
					continue
				}
				seen[k] = action
			}
		}
	}

	return errs.ToError()
}

func isPrintableKey(k string) bool {
	if k == "space" {
		return true
	}
	if utf8.RuneCountInString(k) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(k)
	return unicode.IsPrint(r)
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func notEmpty(s string) error {
	if s == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func isDirectoryOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func isFileOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}
