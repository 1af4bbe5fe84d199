package git

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return dir, repo
}

func commitFile(t *testing.T, dir string, repo *gogit.Repository, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(name)
	require.NoError(t, err)
	_, err = wt.Commit("add "+name, &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com"},
	})
	require.NoError(t, err)
}

func TestChangedFilesWorktree(t *testing.T) {
	dir, repo := initRepo(t)
	commitFile(t, dir, repo, "committed.js", "var a = 1\n")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.js"), []byte("eval(x)\n"), 0644))

	got, err := ChangedFiles(dir, "")
	require.NoError(t, err)
	assert.Contains(t, got, "new.js")
	assert.NotContains(t, got, "committed.js")
}

func TestChangedFilesNotARepo(t *testing.T) {
	_, err := ChangedFiles(t.TempDir(), "")
	assert.Error(t, err)
}

func TestMetadataBestEffort(t *testing.T) {
	dir, repo := initRepo(t)
	commitFile(t, dir, repo, "a.txt", "x\n")

	repoName, commit, branch := Metadata(dir)
	assert.Empty(t, repoName) // no origin remote configured
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, branch)

	// failure path returns empty strings, never an error
	r, c, b := Metadata(t.TempDir())
	assert.Empty(t, r)
	assert.Empty(t, c)
	assert.Empty(t, b)
}
