// Package levels embeds the bundled sample dungeons.
package levels

import (
	"embed"
	"io/fs"
)

//go:embed *.json *.yaml
var files embed.FS

// FS returns the bundled level files.
func FS() fs.FS {
	return files
}
