// Copyright Punit Mishra, 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punitmishra/publish-engine/internal/ledger"
)

func setupContentDir(t *testing.T) (contentDir, ledgerPath string) {
	t.Helper()
	dir := t.TempDir()
	contentDir = filepath.Join(dir, "content")
	require.NoError(t, os.MkdirAll(contentDir, 0o755))

	post := "---\ntitle: A Post\ndate: 2024-01-01\n---\nbody\n"
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "a-post.md"), []byte(post), 0o644))

	ledgerPath = filepath.Join(dir, ".publish", "publish.db")

	viper.Set("site.content_dir", contentDir)
	viper.Set("ledger_path", ledgerPath)
	t.Cleanup(viper.Reset)
	return contentDir, ledgerPath
}

func TestArticlesDoesNotCreateLedger(t *testing.T) {
	_, ledgerPath := setupContentDir(t)

	require.NoError(t, runArticles(articlesCmd, nil))

	_, err := os.Stat(ledgerPath)
	assert.True(t, os.IsNotExist(err), "listing must not create the ledger file")
	_, err = os.Stat(filepath.Dir(ledgerPath))
	assert.True(t, os.IsNotExist(err), "listing must not create the ledger directory")
}

func TestArticlesReadsExistingLedger(t *testing.T) {
	_, ledgerPath := setupContentDir(t)

	led, err := ledger.Open(ledgerPath)
	require.NoError(t, err)
	require.NoError(t, led.Record("a-post", ledger.PlatformTwitter, ""))
	require.NoError(t, led.Close())

	require.NoError(t, runArticles(articlesCmd, nil))
}
