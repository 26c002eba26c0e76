package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/the-line/pkg/scenario"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <scenario.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	fmt.Printf("Validating %s...\n", filename)

	if err := validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Scenario file is valid!")
}

func validateFile(filename string) error {
	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("scenario file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidScenarioFilename(nameWithoutExt) {
		return fmt.Errorf("scenario filename '%s' must be lowercase snake_case (e.g., my_scenario.json, not my-scenario.json or MyScenario.json)", baseName)
	}

	s, err := scenario.LoadFile(filename)
	if err != nil {
		return err
	}

	if err := s.Validate(); err != nil {
		return fmt.Errorf("validation errors in %s:\n%s", filename, indent(err))
	}
	return nil
}

// indent prints each joined error on its own bullet line.
func indent(err error) string {
	lines := strings.Split(err.Error(), "\n")
	for i, l := range lines {
		lines[i] = "  - " + l
	}
	return strings.Join(lines, "\n")
}

func isValidScenarioFilename(name string) bool {
	// Allow 'x.' prefix for experimental scenarios
	name = strings.TrimPrefix(name, "x.")
	return scenario.IsValidID(name)
}
