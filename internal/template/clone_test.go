package template

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amwatson/vrdev/internal/invoke"
)

// setupTemplateRepo creates a temporary Git repository shaped like the VR
// template project: package-named Kotlin sources, a CMake target, and a
// display title, all committed so it can be cloned.
func setupTemplateRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	runTestGit(t, dir, "init")
	runTestGit(t, dir, "config", "user.email", "test@example.com")
	runTestGit(t, dir, "config", "user.name", "Test User")

	writeRepoFile(t, dir, "app/src/main/java/com/amwatson/vrtemplate/MainActivity.kt",
		"package com.amwatson.vrtemplate\n\nclass MainActivity {\n    val tag = \"VrTemplate\"\n}\n")
	writeRepoFile(t, dir, "app/src/main/cpp/CMakeLists.txt",
		"project(vrtemplate)\nadd_library(vrtemplate SHARED main.cpp)\n")
	writeRepoFile(t, dir, "app/src/main/res/values/strings.xml",
		"<resources>\n    <string name=\"app_name\">VR Template</string>\n</resources>\n")
	writeRepoFile(t, dir, "settings.gradle.kts",
		"rootProject.name = \"VrTemplate\"\n")

	runTestGit(t, dir, "add", ".")
	runTestGit(t, dir, "commit", "-m", "initial commit")

	return dir
}

func writeRepoFile(t *testing.T, dir, rel, content string) {
	t.Helper()

	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// runTestGit runs a git command in the given directory and fails the test
// on a nonzero exit.
func runTestGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, string(output))
	return string(output)
}

// setGitIdentity provides a commit identity through the environment, so
// the Cloner's commit works even where no global git config exists.
func setGitIdentity(t *testing.T) {
	t.Helper()

	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
}

func testOptions(source, destRoot string) Options {
	return Options{
		Source:       source,
		DestRoot:     destRoot,
		AppName:      "Galaxy",
		PackageID:    "com.example.galaxy",
		OldPackageID: "com.amwatson.vrtemplate",
		OldAppName:   "VrTemplate",
		OldAppTitle:  "VR Template",
	}
}

// TestClone exercises the full clone-and-rename flow against a real Git
// repository: clone, rewrite, package move, and the final commit.
func TestClone(t *testing.T) {
	setGitIdentity(t)
	source := setupTemplateRepo(t)
	destRoot := t.TempDir()

	c := NewCloner(invoke.New(log.New(io.Discard)), log.New(io.Discard))
	dest, err := c.Clone(context.Background(), testOptions(source, destRoot))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destRoot, "Galaxy"), dest)

	// Sources moved to the new package directory and carry the new identity.
	kt, err := os.ReadFile(filepath.Join(dest, "app/src/main/java/com/example/galaxy/MainActivity.kt"))
	require.NoError(t, err)
	assert.Contains(t, string(kt), "package com.example.galaxy")
	assert.Contains(t, string(kt), "val tag = \"Galaxy\"")

	_, statErr := os.Stat(filepath.Join(dest, "app/src/main/java/com/amwatson"))
	assert.True(t, os.IsNotExist(statErr), "old package tree should be gone")

	cmake, err := os.ReadFile(filepath.Join(dest, "app/src/main/cpp/CMakeLists.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(cmake), "project(galaxy)")

	strs, err := os.ReadFile(filepath.Join(dest, "app/src/main/res/values/strings.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(strs), ">Galaxy<")

	gradle, err := os.ReadFile(filepath.Join(dest, "settings.gradle.kts"))
	require.NoError(t, err)
	assert.Contains(t, string(gradle), "rootProject.name = \"Galaxy\"")

	// The rewrite is committed, leaving a clean worktree.
	assert.Empty(t, strings.TrimSpace(runTestGit(t, dest, "status", "--porcelain")))
	lastMessage := runTestGit(t, dest, "log", "-1", "--pretty=%s")
	assert.Contains(t, lastMessage, "Rename to Galaxy and package com.example.galaxy")
}

// TestCloneMissingSource verifies that a failed git clone surfaces as an
// error and creates nothing to commit.
func TestCloneMissingSource(t *testing.T) {
	setGitIdentity(t)
	destRoot := t.TempDir()

	c := NewCloner(invoke.New(log.New(io.Discard)), log.New(io.Discard))
	_, err := c.Clone(context.Background(), testOptions(filepath.Join(t.TempDir(), "nope"), destRoot))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "git clone failed")
}
