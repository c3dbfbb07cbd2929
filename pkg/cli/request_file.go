package cli

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// loadRequestFile reads a request or schema file into out.
// sigs.k8s.io/yaml can handle both YAML and JSON.
func loadRequestFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}
