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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Files(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.tsx"), []byte("before"), 0600))

	mgr := New(dir)

	t.Run("read_relative", func(t *testing.T) {
		content, err := mgr.ReadFile(ctx, "page.tsx")
		require.NoError(t, err)
		assert.Equal(t, "before", string(content))
	})

	t.Run("write_keeps_mode", func(t *testing.T) {
		require.NoError(t, mgr.WriteFile(ctx, "page.tsx", []byte("after")))

		content, err := os.ReadFile(filepath.Join(dir, "page.tsx"))
		require.NoError(t, err)
		assert.Equal(t, "after", string(content))

		info, err := os.Stat(filepath.Join(dir, "page.tsx"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("read_absolute", func(t *testing.T) {
		content, err := New("/nonexistent").ReadFile(ctx, filepath.Join(dir, "page.tsx"))
		require.NoError(t, err)
		assert.Equal(t, "after", string(content))
	})

	t.Run("read_missing", func(t *testing.T) {
		_, err := mgr.ReadFile(ctx, "missing.tsx")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading file")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("write_missing_does_not_create", func(t *testing.T) {
		err := mgr.WriteFile(ctx, "missing.tsx", []byte("x"))
		require.Error(t, err)
		_, statErr := os.Stat(filepath.Join(dir, "missing.tsx"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := mgr.FileExists(ctx, "page.tsx")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = mgr.FileExists(ctx, "missing.tsx")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestManager_Track(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	mgr := New("")

	mgr.Track(ctx, FileResult{Path: "a.tsx", Outcome: OutcomeFixed, Replacements: 1})
	mgr.Track(ctx, FileResult{Path: "b.tsx", Outcome: OutcomeUnchanged, Unmatched: []string{"email-filter"}})
	mgr.Track(ctx, FileResult{Path: "c.tsx", Outcome: OutcomeFixed, Replacements: 2})
	mgr.Track(ctx, FileResult{Path: "d.tsx", Outcome: OutcomeFailed, Error: assert.AnError})

	counts := mgr.Counts()
	assert.Equal(t, Counts{Fixed: 2, Unchanged: 1, Failed: 1}, counts)
	assert.Equal(t, 4, counts.Total())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "fixed", OutcomeFixed.String())
	assert.Equal(t, "unchanged", OutcomeUnchanged.String())
	assert.Equal(t, "would_fix", OutcomeWouldFix.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown", OutcomeUnknown.String())
}
