// Package docfile loads base documents from YAML, JSON, or TOML files.
//
// A loaded document feeds envjson.WithDocument, so environment values can
// override file-provided defaults.
//
// Example:
//
//	defaults, err := docfile.Load("defaults.yaml", docfile.Options{})
//	parser, err := envjson.New(envjson.WithDocument(defaults))
package docfile
