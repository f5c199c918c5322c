package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRules builds the rule set for the canonical rename used throughout
// these tests: VrTemplate -> Galaxy, com.amwatson.vrtemplate -> com.example.galaxy.
func testRules() []rule {
	return replacements(
		"com.amwatson.vrtemplate", "com.example.galaxy",
		"VrTemplate", "Galaxy",
		"VR Template",
	)
}

// TestCamelToTitle verifies CamelCase-to-title conversion.
func TestCamelToTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"CoolProject", "Cool Project"},
		{"VrTemplate", "Vr Template"},
		{"Galaxy", "Galaxy"},
		{"myApp", "My App"},
		{"SpaceStationSim", "Space Station Sim"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, camelToTitle(tt.input))
		})
	}
}

// TestApply verifies all five identity forms rewrite in one pass over
// realistic file content.
func TestApply(t *testing.T) {
	t.Run("kotlin source", func(t *testing.T) {
		in := `package com.amwatson.vrtemplate

class MainActivity {
    companion object {
        const val TAG = "VrTemplate"
    }
}`
		out := apply(in, testRules())
		assert.Contains(t, out, "package com.example.galaxy")
		assert.Contains(t, out, `const val TAG = "Galaxy"`)
		assert.NotContains(t, out, "vrtemplate")
		assert.NotContains(t, out, "VrTemplate")
	})

	t.Run("jni symbol uses underscored package", func(t *testing.T) {
		in := `JNIEXPORT void JNICALL
Java_com_amwatson_vrtemplate_MainActivity_nativeInit(JNIEnv *env, jobject obj);`
		out := apply(in, testRules())
		assert.Contains(t, out, "Java_com_example_galaxy_MainActivity_nativeInit")
	})

	t.Run("cmake target uses lowercase name", func(t *testing.T) {
		in := `project(vrtemplate)
add_library(vrtemplate SHARED main.cpp)`
		out := apply(in, testRules())
		assert.Contains(t, out, "project(galaxy)")
		assert.Contains(t, out, "add_library(galaxy SHARED main.cpp)")
	})

	t.Run("display title becomes title-cased new name", func(t *testing.T) {
		in := `<string name="app_name">VR Template</string>`
		out := apply(in, testRules())
		assert.Equal(t, `<string name="app_name">Galaxy</string>`, out)
	})

	t.Run("multi-word title", func(t *testing.T) {
		rules := replacements(
			"com.amwatson.vrtemplate", "com.example.coolproject",
			"VrTemplate", "CoolProject",
			"VR Template",
		)
		out := apply(`<string name="app_name">VR Template</string>`, rules)
		assert.Contains(t, out, "Cool Project")
	})

	t.Run("word boundary protects larger identifiers", func(t *testing.T) {
		// No boundary between "VrTemplate" and "Renderer", so the name
		// inside a longer identifier stays put.
		in := `class VrTemplateRenderer`
		out := apply(in, testRules())
		assert.Equal(t, `class VrTemplateRenderer`, out)
	})
}

// TestIsTextFile verifies suffix matching on full filenames.
func TestIsTextFile(t *testing.T) {
	assert.True(t, isTextFile("MainActivity.kt"))
	assert.True(t, isTextFile("Player.java"))
	assert.True(t, isTextFile("main.cpp"))
	assert.True(t, isTextFile("renderer.h"))
	assert.True(t, isTextFile("AndroidManifest.xml"))
	assert.True(t, isTextFile("build.gradle.kts"))
	assert.True(t, isTextFile("CMakeLists.txt"))
	assert.True(t, isTextFile("tooling.py"))

	assert.False(t, isTextFile("icon.png"))
	assert.False(t, isTextFile("gradlew"))
	assert.False(t, isTextFile("README.md"))
	assert.False(t, isTextFile("libengine.so"))
}

// TestRewriteTree verifies rewriting across a directory tree: matching
// files change, binaries and the .git directory do not, and the changed
// count reflects only real modifications.
func TestRewriteTree(t *testing.T) {
	root := t.TempDir()

	write := func(rel, content string) string {
		t.Helper()
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	ktPath := write("app/src/main/java/Main.kt", "package com.amwatson.vrtemplate\n")
	pngPath := write("app/src/main/res/icon.png", "binary VrTemplate bytes")
	gitPath := write(".git/description", "VrTemplate repository\n")
	samePath := write("app/build.gradle.kts", "plugins { id(\"com.android.application\") }\n")

	changed, err := rewriteTree(root, testRules())
	require.NoError(t, err)
	assert.Equal(t, 1, changed, "only the kotlin file should register as changed")

	kt, _ := os.ReadFile(ktPath)
	assert.Equal(t, "package com.example.galaxy\n", string(kt))

	png, _ := os.ReadFile(pngPath)
	assert.Equal(t, "binary VrTemplate bytes", string(png), "non-text files stay untouched")

	git, _ := os.ReadFile(gitPath)
	assert.Equal(t, "VrTemplate repository\n", string(git), ".git contents stay untouched")

	same, _ := os.ReadFile(samePath)
	assert.Equal(t, "plugins { id(\"com.android.application\") }\n", string(same))
}

// TestMovePackageDir verifies the package directory move, including the
// one-level cleanup of the emptied old parent.
func TestMovePackageDir(t *testing.T) {
	root := t.TempDir()

	oldDir := filepath.Join(root, "app", "src", "main", "java", "com", "amwatson", "vrtemplate")
	require.NoError(t, os.MkdirAll(oldDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(oldDir, "Main.kt"), []byte("package x\n"), 0644))

	err := movePackageDir(root, "com.amwatson.vrtemplate", "com.example.galaxy")
	require.NoError(t, err)

	moved := filepath.Join(root, "app", "src", "main", "java", "com", "example", "galaxy", "Main.kt")
	assert.FileExists(t, moved)

	_, statErr := os.Stat(oldDir)
	assert.True(t, os.IsNotExist(statErr), "old package directory should be gone")

	_, statErr = os.Stat(filepath.Join(root, "app", "src", "main", "java", "com", "amwatson"))
	assert.True(t, os.IsNotExist(statErr), "emptied old parent should be pruned")
}

// TestMovePackageDirSharedPrefix verifies moving within the same vendor
// segment: the shared parent survives because it is not empty.
func TestMovePackageDirSharedPrefix(t *testing.T) {
	root := t.TempDir()

	oldDir := filepath.Join(root, "app", "src", "main", "java", "com", "amwatson", "vrtemplate")
	require.NoError(t, os.MkdirAll(oldDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(oldDir, "Main.kt"), []byte("package x\n"), 0644))

	err := movePackageDir(root, "com.amwatson.vrtemplate", "com.amwatson.galaxy")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "app", "src", "main", "java", "com", "amwatson", "galaxy", "Main.kt"))
	assert.NoDirExists(t, oldDir)
}

// TestMovePackageDirAbsent verifies a project without the standard Java
// source layout is a no-op, not an error.
func TestMovePackageDirAbsent(t *testing.T) {
	err := movePackageDir(t.TempDir(), "com.amwatson.vrtemplate", "com.example.galaxy")
	assert.NoError(t, err)
}
