package conventional

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// mergeHeadRef is the reference git keeps while a merge is unfinished.
const mergeHeadRef = "MERGE_HEAD"

// RepoState reports repository state that changes how a commit message is
// validated.
type RepoState interface {
	// MergeInProgress reports whether the repository has an unfinished merge.
	MergeInProgress() bool
}

type gitRepoState struct {
	path string
}

// NewRepoState returns the state of the repository containing path. A path
// outside any git repository yields a state that never reports a merge.
func NewRepoState(path string) RepoState {
	return gitRepoState{path: path}
}

func (s gitRepoState) MergeInProgress() bool {
	repo, err := git.PlainOpenWithOptions(s.path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return false
	}

	_, err = repo.Reference(plumbing.ReferenceName(mergeHeadRef), false)

	return err == nil
}
