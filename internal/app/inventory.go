package app

import (
	"context"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"yaml-inventory/internal/core"
	"yaml-inventory/internal/types"
)

// List builds the full inventory document.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	inv, sources, err := s.buildGraph(ctx, req.Mode, req.Path)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{
		Document: core.NewSerializer().Document(inv),
		Sources:  sources,
	}, nil
}

// HostVars returns one host's merged variable mapping. An unknown
// host is not an error and yields an empty mapping, per the dynamic
// inventory contract.
func (s Service) HostVars(ctx context.Context, req HostVarsRequest) (HostVarsResult, error) {
	inv, _, err := s.buildGraph(ctx, req.Mode, req.Path)
	if err != nil {
		return HostVarsResult{}, err
	}
	host, ok := inv.Hosts[req.Host]
	if !ok {
		return HostVarsResult{Vars: types.Vars{}}, nil
	}
	return HostVarsResult{Vars: host.Vars}, nil
}

func (s Service) buildGraph(ctx context.Context, mode types.SourceMode, path string) (types.Inventory, int, error) {
	assert.NotEmpty(ctx, string(mode), "source mode must be set")
	assert.NotEmpty(ctx, strings.TrimSpace(path), "source path must be set")

	paths, err := s.Locator.Discover(mode, path)
	if err != nil {
		return types.Inventory{}, 0, err
	}
	var decls []types.HostDecl
	for _, sourcePath := range paths {
		doc, err := s.Sources.Load(sourcePath)
		if err != nil {
			return types.Inventory{}, 0, err
		}
		decls = append(decls, doc.Hosts...)
	}
	overlays := s.NewOverlays(overlayBase(mode, path))
	builder := core.NewGraphBuilder(overlays)
	inv, err := builder.Build(ctx, decls)
	if err != nil {
		return types.Inventory{}, 0, err
	}
	return inv, len(paths), nil
}

// overlayBase is where group_vars/ and host_vars/ are looked up: the
// scan root itself, or the directory holding an explicit source file.
func overlayBase(mode types.SourceMode, path string) string {
	if mode == types.SourceModeFile {
		return filepath.Dir(path)
	}
	return path
}
