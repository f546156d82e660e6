package configs

import (
	"errors"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("value not found")

// Loader evaluates a list of cue files lazily, first path wins on lookup.
// Missing files are skipped, so default paths can be listed unconditionally.
type Loader struct {
	getRoots func() ([]cue.Value, error)
}

func NewLoader(filePaths []string) Loader {
	return Loader{

		getRoots: sync.OnceValues(func() (ret []cue.Value, err error) {
			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					if os.IsNotExist(err) {
						continue
					}
					return nil, err
				}

				ctx := cuecontext.New()
				value := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err := value.Err(); err != nil {
					return nil, err
				}

				ret = append(ret, value)
			}
			return
		}),
	}
}

// AssignFirst decodes the first occurrence of path among the loaded roots.
func (l Loader) AssignFirst(path string, target any) error {
	roots, err := l.getRoots()
	if err != nil {
		return err
	}

	cuePath := cue.ParsePath(path)
	for _, root := range roots {
		value := root.LookupPath(cuePath)
		if err := value.Err(); err == nil {
			if err := value.Decode(target); err != nil {
				return err
			}
			return nil
		}
	}

	return ErrValueNotFound
}
