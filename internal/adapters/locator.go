package adapters

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"yaml-inventory/internal/ports"
	"yaml-inventory/internal/types"
)

var sourceNamePattern = regexp.MustCompile(`\.ya?ml$`)

type LocatorAdapter struct{}

func NewLocatorAdapter() LocatorAdapter {
	return LocatorAdapter{}
}

// Discover resolves the source mode into the ordered list of files to
// parse. In scan mode candidate files without the marker are silently
// skipped; the result is sorted so discovery order does not depend on
// filesystem enumeration order. In file mode the path is returned as
// is and the parser enforces the marker.
func (a LocatorAdapter) Discover(mode types.SourceMode, path string) ([]string, error) {
	switch mode {
	case types.SourceModeFile:
		if _, err := os.Stat(path); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("source file not found: " + path).
				WithCause(err)
		}
		return []string{path}, nil
	case types.SourceModeScan:
		return a.scan(path)
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported source mode: " + string(mode))
	}
}

func (a LocatorAdapter) scan(root string) ([]string, error) {
	var paths []string
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("scan root is empty")
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if shouldSkipScanDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !sourceNamePattern.MatchString(d.Name()) {
			return nil
		}
		marked, err := hasMarkerPrefix(path)
		if err != nil {
			return err
		}
		if !marked {
			log.Debug().Str("path", path).Msg("yaml file without inventory marker skipped")
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan for inventory sources").
			WithCause(err)
	}
	sort.Strings(paths)
	log.Debug().Int("sources", len(paths)).Str("root", root).Msg("inventory sources discovered")
	return paths, nil
}

// hasMarkerPrefix sniffs the first bytes of a candidate file without
// reading it fully.
func hasMarkerPrefix(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	buf := make([]byte, len(sourceMarker))
	if _, err := io.ReadFull(f, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, err
	}
	return HasSourceMarker(buf), nil
}

func shouldSkipScanDir(name string) bool {
	switch name {
	case ".git", ".svn", ".hg", "group_vars", "host_vars":
		return true
	default:
		return false
	}
}

var _ ports.LocatorPort = LocatorAdapter{}
