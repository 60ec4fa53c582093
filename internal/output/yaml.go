package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLWriter outputs the preview as YAML.
type YAMLWriter struct{}

func (y *YAMLWriter) Write(w io.Writer, p *Preview) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
