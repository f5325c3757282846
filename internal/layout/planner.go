package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dorg/internal/config"
	"dorg/internal/faults"
	"dorg/internal/timestamp"
)

// Plan is the destination computed for one file.
type Plan struct {
	TargetDir  string
	TargetPath string
}

// Anchor returns the directory under which the date hierarchy for path is
// built. AnchorBase uses baseDir. AnchorLegacy uses the first named component
// of path, resolved against workDir, or workDir itself when path has none.
func Anchor(policy config.AnchorPolicy, path, baseDir, workDir string) (string, error) {
	switch policy {
	case config.AnchorBase:
		if strings.TrimSpace(baseDir) == "" {
			return "", faults.Wrap(faults.ErrPlanning, "layout", "anchor", "base directory is empty", nil)
		}
		return filepath.Clean(baseDir), nil
	case config.AnchorLegacy:
		if strings.TrimSpace(workDir) == "" {
			return "", faults.Wrap(faults.ErrPlanning, "layout", "anchor", "no working directory for "+path, nil)
		}
		if first, ok := FirstNormalComponent(path); ok {
			return filepath.Join(workDir, first), nil
		}
		return filepath.Clean(workDir), nil
	default:
		return "", faults.Wrap(faults.ErrPlanning, "layout", "anchor", "unknown anchor policy "+policy.String(), nil)
	}
}

// FirstNormalComponent returns the first path segment that is not a volume,
// root, "." or "..".
func FirstNormalComponent(path string) (string, bool) {
	rest := path[len(filepath.VolumeName(path)):]
	for _, segment := range strings.FieldsFunc(rest, isSeparator) {
		if segment == "." || segment == ".." {
			continue
		}
		return segment, true
	}
	return "", false
}

func isSeparator(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}

// Destination builds the plan for a file called name dated date under anchor.
func Destination(date timestamp.Date, mode config.GroupingMode, anchor, name string) (Plan, error) {
	if strings.TrimSpace(anchor) == "" {
		return Plan{}, faults.Wrap(faults.ErrPlanning, "layout", "destination", "anchor is empty", nil)
	}
	if name == "" || name == "." || name == ".." || strings.ContainsFunc(name, isSeparator) {
		return Plan{}, faults.Wrap(faults.ErrPlanning, "layout", "destination", fmt.Sprintf("unusable file name %q", name), nil)
	}
	if date.Month < 1 || date.Month > 12 || date.Day < 1 || date.Day > 31 {
		return Plan{}, faults.Wrap(faults.ErrPlanning, "layout", "destination", fmt.Sprintf("invalid date %+v", date), nil)
	}

	segments := []string{filepath.Clean(anchor), strconv.Itoa(date.Year), strconv.Itoa(int(date.Month))}
	switch mode {
	case config.ByMonth:
	case config.ByDay:
		segments = append(segments, strconv.Itoa(date.Day))
	default:
		return Plan{}, faults.Wrap(faults.ErrPlanning, "layout", "destination", "unknown grouping mode "+mode.String(), nil)
	}

	dir := filepath.Join(segments...)
	return Plan{TargetDir: dir, TargetPath: filepath.Join(dir, name)}, nil
}
