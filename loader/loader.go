// Package loader loads Lua game content into Go structs at load time.
// The Lua VM is discarded after loading — zero Lua at runtime.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathoo/borderline/types"
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	events         []rawEvent
	dialogue       []rawDialogue
	flavor         []*lua.LTable
	locationFlavor []*lua.LTable
	quotes         []string
}

// Load reads all .lua files from dir, compiles them into game content,
// and validates the result.
func Load(dir string) (*types.Content, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	sort.Strings(files)

	return run(files, func(L *lua.LState, name string) error {
		return L.DoFile(filepath.Join(dir, name))
	})
}

// LoadFS loads all .lua files from a filesystem, typically the embedded
// default content.
func LoadFS(fsys fs.FS) (*types.Content, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".lua") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking content filesystem: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .lua files found in embedded content")
	}
	sort.Strings(files)

	return run(files, func(L *lua.LState, name string) error {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		return L.DoString(string(src))
	})
}

// run executes the content files in a sandboxed VM and compiles the
// collected definitions.
func run(files []string, exec func(*lua.LState, string) error) (*types.Content, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range files {
		if err := exec(L, f); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	content, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling content: %w", err)
	}
	if err := validate(content); err != nil {
		return nil, err
	}
	return content, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Remove math.randomseed to preserve determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
