package matriz

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"enermatrix/pkg/matriz/models"
)

// Discover walks dir recursively and returns the spreadsheet files to
// process, lexicographically sorted by path so runs are reproducible.
// Office lock files ("~$...") and unknown extensions are ignored.
func Discover(dir string) ([]models.MatrixFile, error) {
	var files []models.MatrixFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), "~$") {
			return nil
		}
		format := models.DetectFormat(path)
		if format == "" {
			return nil
		}
		files = append(files, models.MatrixFile{Path: path, Format: format})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
