// Package update checks GitHub Releases for a newer sigscan build. Lookups
// are rate-limited by an on-disk stamp so repeated CLI invocations do not
// hit the network more than once per day.
package update

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	semver "github.com/blang/semver/v4"
)

const (
	releaseURL    = "https://api.github.com/repos/sigscan/sigscan/releases/latest"
	checkInterval = 24 * time.Hour
)

// stamp records the outcome of the last release lookup.
type stamp struct {
	Latest    string    `json:"latest"`
	CheckedAt time.Time `json:"checked_at"`
}

func (s stamp) fresh() bool {
	return s.Latest != "" && time.Since(s.CheckedAt) <= checkInterval
}

func stampPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "sigscan", "release_check.json")
}

func readStamp(path string) stamp {
	var s stamp
	if path == "" {
		return s
	}
	if b, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(b, &s)
	}
	return s
}

func writeStamp(path string, s stamp) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	if b, err := json.Marshal(s); err == nil {
		_ = os.WriteFile(path, b, 0644)
	}
}

// fetchLatest asks the releases API at url for the newest tag, without the
// leading "v".
func fetchLatest(url string) (string, error) {
	client := &http.Client{Timeout: 3 * time.Second}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "sigscan")
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup: %s", resp.Status)
	}
	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}
	if release.TagName == "" {
		return "", fmt.Errorf("release lookup: empty tag")
	}
	return strings.TrimPrefix(strings.TrimSpace(release.TagName), "v"), nil
}

// newerThan reports whether latest is a strictly newer semantic version than
// current. Unparseable versions never trigger an update nag.
func newerThan(latest, current string) bool {
	lv, err := semver.ParseTolerant(latest)
	if err != nil {
		return false
	}
	cv, err := semver.ParseTolerant(current)
	if err != nil {
		return false
	}
	return lv.GT(cv)
}

// Check returns the latest released version and whether it is newer than
// current. It is a no-op in CI and when noNetwork is set.
func Check(current string, noNetwork bool) (string, bool, error) {
	if os.Getenv("CI") != "" || noNetwork {
		return "", false, nil
	}
	path := stampPath()
	s := readStamp(path)
	if !s.fresh() {
		latest, err := fetchLatest(releaseURL)
		if err != nil {
			return s.Latest, false, err
		}
		s = stamp{Latest: latest, CheckedAt: time.Now()}
		writeStamp(path, s)
	}
	if s.Latest == "" || current == "" {
		return s.Latest, false, nil
	}
	return s.Latest, newerThan(s.Latest, current), nil
}
