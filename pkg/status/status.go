// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 Outcome is what happened to a single file during a patch run
type Outcome int

const (
	OutcomeUnknown   Outcome = iota
	OutcomeFixed             // File content changed and was written
	OutcomeUnchanged         // No rule changed the content
	OutcomeWouldFix          // Content would change, dry run left it alone
	OutcomeFailed            // Reading, patching or writing failed
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeFixed:
		return "fixed"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeWouldFix:
		return "would_fix"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileResult records the outcome of patching one file
type FileResult struct {
	Path         string   // Path as given to the patcher
	Outcome      Outcome  // What happened
	Replacements int      // Number of matches rewritten
	Unmatched    []string // Rules that found nothing
	Error        error    // Set when Outcome is OutcomeFailed
}

// 🔢 Counts tallies outcomes across a run
type Counts struct {
	Fixed     int
	Unchanged int
	WouldFix  int
	Failed    int
}

// Total returns the number of files seen
func (c Counts) Total() int {
	return c.Fixed + c.Unchanged + c.WouldFix + c.Failed
}

// 💾 FileManager handles the file system side of patching
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile overwrites an existing file in place, keeping its mode
	WriteFile(ctx context.Context, path string, content []byte) error
	FileExists(ctx context.Context, path string) (bool, error)
}

// 📈 StatusReporter tracks per-file outcomes
type StatusReporter interface {
	Track(ctx context.Context, result FileResult)
	Counts() Counts
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	baseDir string // Base directory for relative paths, empty means the working directory

	mu      sync.RWMutex
	results []FileResult
}

var (
	_ FileManager    = (*Manager)(nil)
	_ StatusReporter = (*Manager)(nil)
)

// 🏭 New creates a new status manager
func New(baseDir string) *Manager {
	if baseDir != "" {
		baseDir = filepath.Clean(baseDir)
	}
	return &Manager{baseDir: baseDir}
}

// 🔒 getAbsPath resolves path against the base directory
func (m *Manager) getAbsPath(path string) string {
	if filepath.IsAbs(path) || m.baseDir == "" {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

// FileManager interface implementation

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)

	info, err := os.Stat(absPath)
	if err != nil {
		return errors.Errorf("checking file: %w", err)
	}

	if err := os.WriteFile(absPath, content, info.Mode().Perm()); err != nil {
		return errors.Errorf("writing file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", absPath).Int("bytes", len(content)).Msg("wrote file")
	return nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(m.getAbsPath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// StatusReporter interface implementation

func (m *Manager) Track(ctx context.Context, result FileResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.results = append(m.results, result)

	ev := zerolog.Ctx(ctx).Debug()
	if result.Error != nil {
		ev = zerolog.Ctx(ctx).Error().Err(result.Error)
	}
	ev.Str("path", result.Path).
		Str("outcome", result.Outcome.String()).
		Int("replacements", result.Replacements).
		Strs("unmatched", result.Unmatched).
		Msg("tracked file")
}

func (m *Manager) Counts() Counts {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Tally(m.results)
}

// Tally counts the outcomes in results
func Tally(results []FileResult) Counts {
	var c Counts
	for _, r := range results {
		switch r.Outcome {
		case OutcomeFixed:
			c.Fixed++
		case OutcomeUnchanged:
			c.Unchanged++
		case OutcomeWouldFix:
			c.WouldFix++
		case OutcomeFailed:
			c.Failed++
		}
	}
	return c
}
