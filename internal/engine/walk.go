package engine

import (
	"io/fs"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/sigscan/sigscan/internal/ignore"
)

// Walk traverses the tree under cfg.Root and invokes visit for each eligible
// source file, in deterministic lexical order. Excluded directories are
// pruned with SkipDir before descending.
func Walk(cfg Config, ign ignore.Matcher, visit func(rel, abs string)) error {
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != cfg.Root && isExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(cfg.Root, p)
		if relErr != nil {
			return nil
		}
		if !isSourceFile(rel) {
			return nil
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			if info, _ := d.Info(); info != nil && info.Size() > cfg.MaxBytes {
				return nil
			}
		}
		visit(rel, p)
		return nil
	})
}

// allowedByGlobs applies the include/exclude glob configuration. Include
// globs, when set, act as a positive filter; excludes are subtracted last.
// Matching uses forward-slash doublestar semantics, against both the full
// relative path and the basename.
func allowedByGlobs(rel string, cfg Config) bool {
	rp := strings.ReplaceAll(rel, "\\", "/")
	includes := parseGlobList(cfg.IncludeGlobs)
	excludes := parseGlobList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchAnyGlob(rp string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, rp); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(rp)); ok {
			return true
		}
	}
	return false
}
