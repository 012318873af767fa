package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	discovererNotConfiguredMessageConstant = "repository discoverer not configured"
	emptyTargetMessageConstant             = "target required"
)

// Sentinel resolution errors.
var (
	ErrDiscovererNotConfigured = errors.New(discovererNotConfiguredMessageConstant)
	ErrTargetRequired          = errors.New(emptyTargetMessageConstant)
)

// RepositoryDiscoverer walks search roots and returns repository paths.
type RepositoryDiscoverer interface {
	DiscoverRepositories(roots []string) ([]string, error)
}

// TargetResolver turns an operator-provided target string into the set of repository paths to operate on.
type TargetResolver struct {
	discoverer RepositoryDiscoverer
}

// NewTargetResolver constructs a TargetResolver backed by the provided discoverer.
func NewTargetResolver(discoverer RepositoryDiscoverer) (*TargetResolver, error) {
	if discoverer == nil {
		return nil, ErrDiscovererNotConfigured
	}
	return &TargetResolver{discoverer: discoverer}, nil
}

// ResolveRepositories interprets the target either as a search root or as a single repository path.
// A target naming an existing directory, or ending with a path separator, selects a recursive search;
// when such a target does not exist its parent directory becomes the search root. Any other target is
// included only when it exists and is itself a repository.
func (resolver *TargetResolver) ResolveRepositories(target string) ([]string, error) {
	trimmedTarget := strings.TrimSpace(target)
	if len(trimmedTarget) == 0 {
		return nil, ErrTargetRequired
	}

	if resolver.targetSelectsSearch(trimmedTarget) {
		searchRoot := filepath.Clean(trimmedTarget)
		if !pathExists(searchRoot) {
			searchRoot = filepath.Dir(searchRoot)
		}
		return resolver.discoverer.DiscoverRepositories([]string{searchRoot})
	}

	if isRepositoryRoot(trimmedTarget) {
		return []string{filepath.Clean(trimmedTarget)}, nil
	}

	return nil, nil
}

func (resolver *TargetResolver) targetSelectsSearch(target string) bool {
	if strings.HasSuffix(target, string(os.PathSeparator)) {
		return true
	}

	targetInfo, statError := os.Stat(target)
	if statError != nil {
		return false
	}
	return targetInfo.IsDir()
}

func isRepositoryRoot(path string) bool {
	_, statError := os.Stat(filepath.Join(path, gitMetadataEntryNameConstant))
	return statError == nil
}

func pathExists(path string) bool {
	_, statError := os.Stat(path)
	return statError == nil
}
