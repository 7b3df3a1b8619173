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

package operation

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/status"
	"github.com/walteh/patchrc/pkg/text"
)

// 🔧 mockFileManager is a mock implementation of status.FileManager
type mockFileManager struct {
	mock.Mock
}

func (m *mockFileManager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	result := m.Called(ctx, path)
	content, _ := result.Get(0).([]byte)
	return content, result.Error(1)
}

func (m *mockFileManager) WriteFile(ctx context.Context, path string, content []byte) error {
	result := m.Called(ctx, path, content)
	return result.Error(0)
}

func (m *mockFileManager) FileExists(ctx context.Context, path string) (bool, error) {
	result := m.Called(ctx, path)
	return result.Bool(0), result.Error(1)
}

// 🔧 mockReplacer is a mock implementation of text.TextReplacer
type mockReplacer struct {
	mock.Mock
}

func (m *mockReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []text.ReplacementRule) (*text.ReplacementResult, error) {
	result := m.Called(ctx, content, rules)
	res, _ := result.Get(0).(*text.ReplacementResult)
	return res, result.Error(1)
}

func (m *mockReplacer) ValidateRules(rules []text.ReplacementRule) error {
	return m.Called(rules).Error(0)
}

// testEnv bundles a context, a console buffer and the options wired to them
type testEnv struct {
	ctx     context.Context
	console *bytes.Buffer
	mgr     *status.Manager
	opts    Options
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	zlog := zerolog.New(zerolog.NewTestWriter(t))
	console := &bytes.Buffer{}
	mgr := status.New("")

	return &testEnv{
		ctx:     zlog.WithContext(context.Background()),
		console: console,
		mgr:     mgr,
		opts: Options{
			Files:    mgr,
			Reporter: mgr,
			Logger:   log.New(console, zlog, nil),
		},
	}
}

// lines returns the non-empty console lines
func (e *testEnv) lines() []string {
	var out []string
	for _, l := range strings.Split(e.console.String(), "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, strings.TrimSpace(l))
		}
	}
	return out
}

// linesWithPrefix returns the console lines starting with prefix
func (e *testEnv) linesWithPrefix(prefix string) []string {
	var out []string
	for _, l := range e.lines() {
		if strings.HasPrefix(l, prefix) {
			out = append(out, l)
		}
	}
	return out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}
