package git

import (
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func open(root string) (*gogit.Repository, error) {
	return gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
}

// ChangedFiles lists paths (relative to the repo root) that differ from the
// given base branch, plus worktree modifications and untracked files. With an
// empty base only the worktree status contributes. Deletions are omitted.
// The result is sorted for deterministic scan ordering.
func ChangedFiles(root, base string) ([]string, error) {
	repo, err := open(root)
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", root, err)
	}

	seen := map[string]bool{}
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
		}
	}

	if base != "" {
		headRef, err := repo.Head()
		if err != nil {
			return nil, err
		}
		headCommit, err := repo.CommitObject(headRef.Hash())
		if err != nil {
			return nil, err
		}
		headTree, err := headCommit.Tree()
		if err != nil {
			return nil, err
		}
		baseHash, err := repo.ResolveRevision(plumbing.Revision(base))
		if err != nil {
			return nil, fmt.Errorf("resolve base %q: %w", base, err)
		}
		baseCommit, err := repo.CommitObject(*baseHash)
		if err != nil {
			return nil, err
		}
		baseTree, err := baseCommit.Tree()
		if err != nil {
			return nil, err
		}
		changes, err := object.DiffTree(baseTree, headTree)
		if err != nil {
			return nil, err
		}
		for _, ch := range changes {
			// empty To.Name means the file was deleted
			add(ch.To.Name)
		}
	}

	wt, err := repo.Worktree()
	if err == nil {
		if status, err := wt.Status(); err == nil {
			for path, st := range status {
				if st.Worktree == gogit.Deleted || st.Staging == gogit.Deleted {
					continue
				}
				if st.Worktree == gogit.Unmodified && st.Staging == gogit.Unmodified {
					continue
				}
				add(path)
			}
		}
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// Metadata returns (repo, commit, branch) best-effort for the given root.
// Empty strings are returned on failure.
func Metadata(root string) (string, string, string) {
	r, err := open(root)
	if err != nil {
		return "", "", ""
	}

	repoName := ""
	if rem, err := r.Remote("origin"); err == nil {
		if urls := rem.Config().URLs; len(urls) > 0 {
			s := strings.TrimSuffix(urls[0], ".git")
			if i := strings.LastIndex(s, ":"); i >= 0 {
				s = s[i+1:]
			}
			if i := strings.Index(s, "github.com/"); i >= 0 {
				s = s[i+len("github.com/"):]
			}
			repoName = strings.TrimPrefix(s, "/")
		}
	}

	commit, branch := "", ""
	if head, err := r.Head(); err == nil {
		commit = head.Hash().String()
		branch = head.Name().Short()
	}
	return repoName, commit, branch
}
