// Package schemas embeds the JSON Schemas describing the records this service emits.
package schemas

import (
	"embed"
	"io/fs"
)

//go:embed *.schema.json
var files embed.FS

// Schema file names.
const (
	ParsedResume    = "parsed_resume.schema.json"
	ConvertedResume = "converted_resume.schema.json"
	Portfolio       = "portfolio.schema.json"
)

// Read returns the raw content of a schema file.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// Names lists every embedded schema file.
func Names() ([]string, error) {
	return fs.Glob(files, "*.schema.json")
}
