package aggregate

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// RawReport is the outcome of loading one tool's JSON document from the
// reports directory. An absent file leaves Present false and is not an
// error: the tool simply did not run. A present but unreadable or
// unparseable file keeps Present true (the tool ran) with Err describing
// the problem; callers treat its contents as empty.
type RawReport struct {
	Tool    string
	Path    string
	Present bool
	Doc     any
	Err     error
}

// loadRawReport reads and decodes one tool report.
func loadRawReport(dir, filename, tool string) RawReport {
	path := filepath.Join(dir, filename)
	raw := RawReport{Tool: tool, Path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return raw
	}
	raw.Present = true

	data, err := os.ReadFile(path)
	if err != nil {
		raw.Err = err
		return raw
	}
	if err := json.Unmarshal(data, &raw.Doc); err != nil {
		raw.Doc = nil
		raw.Err = err
	}
	return raw
}
