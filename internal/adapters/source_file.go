package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"yaml-inventory/internal/ports"
	"yaml-inventory/internal/types"
)

// sourceMarker is the leading comment that identifies a YAML file as
// an inventory source. Only the first len(sourceMarker) bytes of a
// candidate file are inspected.
const sourceMarker = "---\n#### YAML inventory file"

type SourceFileAdapter struct{}

func NewSourceFileAdapter() SourceFileAdapter {
	return SourceFileAdapter{}
}

// Load reads and decodes one inventory source file. The marker is
// enforced here regardless of how the path was discovered, so an
// explicitly selected file without it fails loudly.
func (a SourceFileAdapter) Load(path string) (types.SourceDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SourceDoc{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("source file not readable: " + path).
			WithCause(err)
	}
	if !HasSourceMarker(data) {
		return types.SourceDoc{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source file missing inventory marker: " + path)
	}
	var doc types.SourceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.SourceDoc{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse source yaml: " + path).
			WithCause(err)
	}
	for _, decl := range doc.Hosts {
		if strings.TrimSpace(decl.Host) == "" {
			return types.SourceDoc{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("host declaration missing name in " + path)
		}
	}
	return doc, nil
}

// HasSourceMarker reports whether data begins with the inventory
// marker comment.
func HasSourceMarker(data []byte) bool {
	if len(data) < len(sourceMarker) {
		return false
	}
	return string(data[:len(sourceMarker)]) == sourceMarker
}

var _ ports.SourcePort = SourceFileAdapter{}
