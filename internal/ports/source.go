package ports

import "yaml-inventory/internal/types"

type SourcePort interface {
	Load(path string) (types.SourceDoc, error)
}
