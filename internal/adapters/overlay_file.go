package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"yaml-inventory/internal/ports"
	"yaml-inventory/internal/types"
)

const (
	groupVarsDir = "group_vars"
	hostVarsDir  = "host_vars"
)

// overlayExtensions is the probe order; when both exist the first one
// wins and the twin is ignored.
var overlayExtensions = []string{".yml", ".yaml"}

// OverlayFileAdapter loads group_vars/<name> and host_vars/<name>
// overlay files relative to a base directory (the scan root, or the
// directory containing an explicitly selected source file).
type OverlayFileAdapter struct {
	Dir string
}

func NewOverlayFileAdapter(dir string) OverlayFileAdapter {
	return OverlayFileAdapter{Dir: dir}
}

func (a OverlayFileAdapter) GroupVars(name string) (types.Vars, error) {
	return a.load(groupVarsDir, name)
}

func (a OverlayFileAdapter) HostVars(name string) (types.Vars, error) {
	return a.load(hostVarsDir, name)
}

func (a OverlayFileAdapter) load(kind string, name string) (types.Vars, error) {
	for i, ext := range overlayExtensions {
		path := filepath.Join(a.Dir, kind, name+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("overlay file not readable: " + path).
				WithCause(err)
		}
		vars := types.Vars{}
		if err := yaml.Unmarshal(data, &vars); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse overlay yaml: " + path).
				WithCause(err)
		}
		if vars == nil {
			vars = types.Vars{}
		}
		a.warnShadowedTwins(kind, name, i)
		log.Debug().Str("path", path).Int("keys", len(vars)).Msg("overlay loaded")
		return vars, nil
	}
	return types.Vars{}, nil
}

func (a OverlayFileAdapter) warnShadowedTwins(kind string, name string, winner int) {
	for _, ext := range overlayExtensions[winner+1:] {
		twin := filepath.Join(a.Dir, kind, name+ext)
		if _, err := os.Stat(twin); err == nil {
			log.Debug().Str("path", twin).Msg("overlay shadowed by earlier extension")
		}
	}
}

var _ ports.OverlayPort = OverlayFileAdapter{}
