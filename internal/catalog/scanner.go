package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"cfdsmoke/internal/domain"
)

// Scanner checks the curated cases against a cases tree on disk
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Missing returns the cases whose script is not present under root
func (s *Scanner) Missing(root string, cases []domain.TestCase) ([]domain.TestCase, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cases root does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cases root is not a directory: %s", root)
	}

	var missing []domain.TestCase
	for _, tc := range cases {
		fi, err := os.Stat(filepath.Join(root, tc.Path))
		if err != nil || fi.IsDir() {
			missing = append(missing, tc)
		}
	}
	return missing, nil
}
