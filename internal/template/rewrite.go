// Package template clones the project under a new name and rewrites its
// identity: application id, JNI symbol prefix, app name, display title,
// and the lowercase native target name.
package template

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// textExtensions lists the file suffixes the rewrite touches. Everything
// else (binaries, assets, shader blobs) is left alone.
var textExtensions = []string{".kt", ".java", ".cpp", ".h", ".xml", ".gradle.kts", ".py", ".txt"}

// rule rewrites one identity form. Rules are ordered: the package id runs
// before the bare name so the lowercase name rule only sees what the
// package rule left behind.
type rule struct {
	re   *regexp.Regexp
	repl string
}

// replacements builds the ordered rewrite rules for renaming a project.
//
// Five forms of the identity appear in an Android project:
//
//	com.amwatson.vrtemplate   application id (manifests, Kotlin, Gradle)
//	com_amwatson_vrtemplate   JNI symbol prefix in native code
//	VrTemplate                class prefix and log tag
//	VR Template               display title in strings and docs
//	vrtemplate                native target name in CMakeLists.txt
//
// The display title of the new project is derived from its CamelCase
// name ("CoolProject" becomes "Cool Project").
func replacements(oldID, newID, oldName, newName, oldTitle string) []rule {
	underscore := func(id string) string { return strings.ReplaceAll(id, ".", "_") }
	word := func(w string) *regexp.Regexp {
		return regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}

	rules := []rule{
		{regexp.MustCompile(regexp.QuoteMeta(oldID)), newID},
		{regexp.MustCompile(regexp.QuoteMeta(underscore(oldID))), underscore(newID)},
		{word(oldName), newName},
	}
	if oldTitle != "" {
		rules = append(rules, rule{word(oldTitle), camelToTitle(newName)})
	}
	rules = append(rules, rule{word(strings.ToLower(oldName)), strings.ToLower(newName)})
	return rules
}

// apply runs every rule over the content, in order.
func apply(content string, rules []rule) string {
	for _, r := range rules {
		content = r.re.ReplaceAllLiteralString(content, r.repl)
	}
	return content
}

// rewriteTree applies the rules to every matching text file under root,
// skipping the .git directory. Files are only written back when their
// content actually changed. Returns the number of files modified.
func rewriteTree(root string, rules []rule) (int, error) {
	changed := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !isTextFile(d.Name()) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		rewritten := apply(string(data), rules)
		if rewritten == string(data) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(rewritten), info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		changed++
		return nil
	})
	return changed, err
}

// isTextFile reports whether the filename carries one of the rewritten
// suffixes. Matching is on the full name, so "CMakeLists.txt" matches
// ".txt" and "build.gradle.kts" matches ".gradle.kts".
func isTextFile(name string) bool {
	for _, ext := range textExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// movePackageDir relocates the package-named source directory under
// app/src/main/java from the old application id's path to the new one.
// A project without that layout (no Java/Kotlin sources) is left as is.
func movePackageDir(root, oldID, newID string) error {
	oldDir := packageDir(root, oldID)
	newDir := packageDir(root, newID)

	if info, err := os.Stat(oldDir); err != nil || !info.IsDir() {
		return nil
	}
	if oldDir == newDir {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(newDir), 0755); err != nil {
		return fmt.Errorf("failed to create package directory: %w", err)
	}
	if err := os.Rename(oldDir, newDir); err != nil {
		return fmt.Errorf("failed to move package directory: %w", err)
	}

	// Drop the old package's immediate parent if the move emptied it.
	// A non-empty parent makes Remove fail, which is fine.
	_ = os.Remove(filepath.Dir(oldDir))

	return nil
}

// packageDir maps an application id to its source directory, one path
// segment per id segment.
func packageDir(root, id string) string {
	elems := append([]string{root, "app", "src", "main", "java"}, strings.Split(id, ".")...)
	return filepath.Join(elems...)
}

// camelToTitle splits a CamelCase name into space-separated title-case
// words: "CoolProject" becomes "Cool Project".
func camelToTitle(name string) string {
	var words []string
	var current strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, current.String())
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	for i, w := range words {
		runes := []rune(w)
		words[i] = string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
	}
	return strings.Join(words, " ")
}
