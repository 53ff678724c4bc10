package fsrepo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	goGit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ListCandidates enumerates every regular file under root's worktree that
// is not excluded by a .gitignore anywhere along its path, the "standard
// VCS convention" candidate enumeration spec.md's out-of-scope note
// explicitly carves out room for (§1). root must be (or be inside) a git
// repository; .git and Trueflow's own .trueflow state directory are always
// excluded.
func ListCandidates(root string) ([]string, error) {
	repo, err := goGit.PlainOpenWithOptions(root, &goGit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repo at %s: %w", root, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("resolve worktree: %w", err)
	}
	worktreeRoot := wt.Filesystem.Root()

	var patterns []gitignore.Pattern
	var paths []string

	err = filepath.WalkDir(worktreeRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries rather than failing the whole walk
		}
		rel, relErr := filepath.Rel(worktreeRoot, path)
		if relErr != nil {
			return nil
		}
		if rel == "." {
			rootPatterns, _ := gitignore.ReadPatterns(wt.Filesystem, nil)
			patterns = append(patterns, rootPatterns...)
			return nil
		}
		segments := strings.Split(filepath.ToSlash(rel), "/")

		if d.IsDir() {
			if name := segments[len(segments)-1]; name == ".git" || name == ".trueflow" {
				return filepath.SkipDir
			}
			dirPatterns, _ := gitignore.ReadPatterns(wt.Filesystem, segments)
			patterns = append(patterns, dirPatterns...)
			if matchAny(patterns, segments, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchAny(patterns, segments, false) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk worktree: %w", err)
	}

	sort.Strings(paths)
	return paths, nil
}

func matchAny(patterns []gitignore.Pattern, path []string, isDir bool) bool {
	matcher := gitignore.NewMatcher(patterns)
	return matcher.Match(path, isDir)
}
