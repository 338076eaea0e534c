package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua content constructors as globals.
// Event constructors are curried: Encounter("name") returns a function
// that takes the definition table, so content reads as
//
//	Encounter "Migrant Family" { ... }
func registerAPI(L *lua.LState, coll *collector) {
	eventKinds := []string{"Encounter", "Resource", "Crossing", "Moral", "Weather", "Trauma"}
	for _, kind := range eventKinds {
		kind := kind
		L.SetGlobal(kind, L.NewFunction(func(L *lua.LState) int {
			name := L.CheckString(1)
			L.Push(L.NewFunction(func(L *lua.LState) int {
				tbl := L.CheckTable(1)
				coll.events = append(coll.events, rawEvent{kind: kind, name: name, table: tbl})
				return 0
			}))
			return 1
		}))
	}

	// Dialogue "Character" { player_kind = "...", lines = {...} }
	L.SetGlobal("Dialogue", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.dialogue = append(coll.dialogue, rawDialogue{character: name, table: tbl})
			return 0
		}))
		return 1
	}))

	// Flavor { kind = "migrant", description = "...", flavor = "..." }
	L.SetGlobal("Flavor", L.NewFunction(func(L *lua.LState) int {
		coll.flavor = append(coll.flavor, L.CheckTable(1))
		return 0
	}))

	// LocationFlavor { kind = "desert", name = "...", lines = {...} }
	L.SetGlobal("LocationFlavor", L.NewFunction(func(L *lua.LState) int {
		coll.locationFlavor = append(coll.locationFlavor, L.CheckTable(1))
		return 0
	}))

	// Quote "text"
	L.SetGlobal("Quote", L.NewFunction(func(L *lua.LState) int {
		coll.quotes = append(coll.quotes, L.CheckString(1))
		return 0
	}))
}
