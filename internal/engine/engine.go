package engine

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/sigscan/sigscan/internal/cache"
	"github.com/sigscan/sigscan/internal/catalog"
	"github.com/sigscan/sigscan/internal/git"
	"github.com/sigscan/sigscan/internal/ignore"
	"github.com/sigscan/sigscan/internal/logging"
	"github.com/sigscan/sigscan/internal/types"
)

// MaxSnippetLen bounds the recorded snippet so minified or generated lines
// cannot blow up reports.
const MaxSnippetLen = 120

// Config controls one scan invocation. Each invocation is a pure function of
// its config and the tree on disk; the engine keeps no state across calls.
type Config struct {
	Root string

	// Files restricts scanning to an explicit subset (relative to Root or
	// absolute). When set, traversal is skipped entirely and nonexistent
	// paths are silently dropped.
	Files []string

	// ChangedOnly derives the file subset from git: worktree changes plus,
	// when BaseBranch is set, files differing from that branch.
	ChangedOnly bool
	BaseBranch  string

	IncludeGlobs string
	ExcludeGlobs string
	MaxBytes     int64
	Threads      int
	NoCache      bool

	// Rules overrides the default catalog; nil means catalog.Default().
	Rules []catalog.Rule

	Progress func()
}

// Result carries the full ordered finding list plus the aggregate data the
// caller needs for reporting and the exit decision. Totals and Failed are
// always computed over the complete unfiltered set; display filtering never
// changes them.
type Result struct {
	Findings     []types.Finding
	Totals       map[types.Severity]int
	FilesScanned int
	FilesSkipped int
	Failed       bool
	Duration     time.Duration
}

// Scan runs a scan and returns only the ordered findings.
func Scan(cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

type target struct {
	rel string
	abs string
}

type fileOutcome struct {
	findings []types.Finding
	skipped  bool
	cacheVal cache.Entry
	cacheHit bool
}

// ScanWithStats runs a full scan: enumerate targets, match every non-comment
// line against the catalog, and aggregate totals and the verdict. Findings
// are ordered by traversal order, then line, then catalog order, and the
// ordering is identical whether the scan runs sequentially or across
// workers.
func ScanWithStats(cfg Config) (Result, error) {
	var res Result
	started := time.Now()

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return res, fmt.Errorf("scan root %s: %w", cfg.Root, err)
	}
	if !info.IsDir() {
		return res, fmt.Errorf("scan root %s is not a directory", cfg.Root)
	}

	rules := cfg.Rules
	if rules == nil {
		rules = catalog.Default()
	}

	targets, err := collectTargets(cfg)
	if err != nil {
		return res, err
	}

	db := cache.DB{Entries: map[string]cache.Entry{}}
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	}

	outcomes := make([]fileOutcome, len(targets))
	scanOne := func(i int) {
		outcomes[i] = scanTarget(cfg, db, rules, targets[i])
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads <= 1 {
		for i := range targets {
			scanOne(i)
			if cfg.Progress != nil {
				cfg.Progress()
			}
		}
	} else {
		var wg sync.WaitGroup
		var mu sync.Mutex
		sem := make(chan struct{}, threads)
		for i := range targets {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				scanOne(i)
				if cfg.Progress != nil {
					mu.Lock()
					cfg.Progress()
					mu.Unlock()
				}
			}(i)
		}
		wg.Wait()
	}

	res.Totals = map[types.Severity]int{}
	updated := map[string]cache.Entry{}
	for i, out := range outcomes {
		if out.skipped {
			res.FilesSkipped++
			continue
		}
		res.FilesScanned++
		res.Findings = append(res.Findings, out.findings...)
		for _, f := range out.findings {
			res.Totals[f.Severity]++
		}
		if !cfg.NoCache && !out.cacheHit {
			updated[targets[i].rel] = out.cacheVal
		}
	}
	res.Failed = res.Totals[types.SevCritical] > 0
	res.Duration = time.Since(started)

	if !cfg.NoCache && len(updated) > 0 {
		if db.Entries == nil {
			db.Entries = map[string]cache.Entry{}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(cfg.Root, db)
	}
	return res, nil
}

func scanTarget(cfg Config, db cache.DB, rules []catalog.Rule, t target) fileOutcome {
	data, err := os.ReadFile(t.abs)
	if err != nil {
		logging.L().Debugw("skipping unreadable file", "path", t.rel, "error", err)
		return fileOutcome{skipped: true}
	}
	if looksBinary(data) {
		logging.L().Debugw("skipping binary file", "path", t.rel)
		return fileOutcome{skipped: true}
	}

	h := cache.Hash(data)
	if !cfg.NoCache {
		if e, ok := db.Entries[t.rel]; ok && e.Hash == h {
			return fileOutcome{findings: e.Findings, cacheHit: true}
		}
	}

	findings, err := scanData(t.rel, data, rules)
	if err != nil {
		logging.L().Debugw("skipping unscannable file", "path", t.rel, "error", err)
		return fileOutcome{skipped: true}
	}
	return fileOutcome{
		findings: findings,
		cacheVal: cache.Entry{Hash: h, Findings: findings},
	}
}

// scanData matches every non-comment line against the catalog. Line numbers
// are 1-based; bytes that are not valid UTF-8 are repaired with replacement
// runes rather than aborting. A line exceeding the scanner buffer fails the
// whole file so it is skipped rather than reported half-scanned.
func scanData(rel string, data []byte, rules []catalog.Rule) ([]types.Finding, error) {
	var out []types.Finding
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 4<<20)
	line := 0
	for sc.Scan() {
		line++
		txt := strings.ToValidUTF8(sc.Text(), "�")
		if catalog.IsComment(txt) {
			continue
		}
		for _, r := range catalog.Match(rules, txt) {
			out = append(out, types.Finding{
				Severity: r.Severity,
				Category: r.Category,
				File:     rel,
				Line:     line,
				Message:  r.Message,
				Snippet:  truncate(txt, MaxSnippetLen),
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func looksBinary(b []byte) bool {
	n := len(b)
	if n > 800 {
		n = 800
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}

// collectTargets resolves the set of files to scan, in deterministic order.
// An explicit subset bypasses traversal; a changed-only scan derives the
// subset from git; otherwise the tree is walked.
func collectTargets(cfg Config) ([]target, error) {
	if len(cfg.Files) > 0 {
		return resolveSubset(cfg.Root, cfg.Files), nil
	}
	if cfg.ChangedOnly {
		files, err := git.ChangedFiles(cfg.Root, cfg.BaseBranch)
		if err != nil {
			return nil, err
		}
		return resolveSubset(cfg.Root, files), nil
	}

	var targets []target
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ".sigscanignore"))
	err := Walk(cfg, ign, func(rel, abs string) {
		targets = append(targets, target{rel: rel, abs: abs})
	})
	return targets, err
}

func resolveSubset(root string, files []string) []target {
	var targets []target
	for _, f := range files {
		abs := f
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(root, f)
		}
		info, err := os.Stat(abs)
		if err != nil || info.IsDir() {
			// nonexistent subset entries are silently skipped
			continue
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil || strings.HasPrefix(rel, "..") {
			rel = abs
		}
		targets = append(targets, target{rel: rel, abs: abs})
	}
	return targets
}

// CountTargets enumerates the files a scan with this config would visit,
// used to size progress reporting before the real scan starts.
func CountTargets(cfg Config) (int, error) {
	targets, err := collectTargets(cfg)
	if err != nil {
		return 0, err
	}
	return len(targets), nil
}

// RuleIDs lists the IDs of the default catalog, for CLI listings.
func RuleIDs() []string {
	return catalog.IDs()
}
