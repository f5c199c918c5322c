// Package config loads the per-project settings for the vrdev CLI.
//
// Settings live in vrdev.jsonc or vrdev.yaml at the project root. JSONC
// is the primary format (comments and trailing commas allowed, stripped
// via github.com/tidwall/jsonc before encoding/json parsing); YAML is
// accepted as an alternative via gopkg.in/yaml.v3. Every field has a
// built-in default matching the VR template project, so a missing file
// or a partial file is not an error.
package config
