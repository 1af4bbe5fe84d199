package engine

import (
	"path/filepath"
	"strings"
)

// Directories never descended into. Pruning happens before recursion, so
// excluded subtrees are never opened.
var excludedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"target":       true,
	"coverage":     true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"bin":          true,
	"obj":          true,
	".next":        true,
	".cache":       true,
}

// Extensions eligible for scanning during traversal. An explicit file subset
// bypasses this list.
var sourceExts = map[string]bool{
	".js": true, ".jsx": true, ".ts": true, ".tsx": true, ".mjs": true, ".cjs": true,
	".py": true, ".rb": true, ".php": true, ".pl": true,
	".java": true, ".kt": true, ".scala": true, ".cs": true,
	".go": true, ".rs": true, ".swift": true,
	".c": true, ".h": true, ".cc": true, ".cpp": true, ".hpp": true,
	".sh": true, ".bash": true,
	".vue": true, ".svelte": true,
	".sql": true,
	".yml": true, ".yaml": true, ".env": true,
}

func isExcludedDir(name string) bool {
	return excludedDirs[name] || strings.HasPrefix(name, ".git")
}

func isSourceFile(rel string) bool {
	return sourceExts[strings.ToLower(filepath.Ext(rel))]
}
