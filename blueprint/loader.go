package blueprint

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger installs the logger used for directory loading progress.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadDir walks a directory and parses every manifest whose path relative
// to dir matches the doublestar pattern (e.g. "**/*.yaml"). Manifests that
// fail to parse are logged and skipped; the walk itself failing is an error.
// Results are ordered by path.
func LoadDir(dir, pattern string) ([]*Document, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	type loadedDoc struct {
		path string
		doc  *Document
	}

	var (
		mu   sync.Mutex
		docs []loadedDoc
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return nil
		}
		matched, matchErr := doublestar.Match(pattern, filepath.ToSlash(rel))
		if matchErr != nil {
			return matchErr
		}
		if !matched {
			return nil
		}

		doc, parseErr := ParseFile(path)
		if parseErr != nil {
			logger.Warn("skipping manifest", zap.String("path", rel), zap.Error(parseErr))
			return nil
		}

		mu.Lock()
		docs = append(docs, loadedDoc{path: rel, doc: doc})
		mu.Unlock()

		logger.Info("loaded manifest", zap.String("path", rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].path < docs[j].path })

	out := make([]*Document, len(docs))
	for i, d := range docs {
		out[i] = d.doc
	}
	return out, nil
}
