// Package content ships the default game content as embedded Lua.
package content

import (
	"embed"

	"github.com/nathoo/borderline/loader"
	"github.com/nathoo/borderline/types"
)

//go:embed *.lua
var files embed.FS

// Default loads and compiles the embedded content.
func Default() (*types.Content, error) {
	return loader.LoadFS(files)
}
