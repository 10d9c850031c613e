// Package lua runs user shortcut scripts in a sandboxed gopher-lua state.
//
// A script registers shortcuts with the global shortcut function. The value
// is either a string or a function returning a string; functions are called
// at expansion time with the shortcut name:
//
//	shortcut("sig", "Best regards,\nDana")
//	shortcut("today", function() return date("2006-01-02") end)
//	shortcut("shout", function(name) return string.upper(name) .. "!" end)
//
// Passing nil as the value removes a shortcut. The shortcuts function
// registers every string key of a table at once.
//
// # Sandbox
//
// The state opens only the base, table, string and math libraries, removes
// dofile, loadfile, load and loadstring, and replaces require with a
// whitelist. Each call runs under a timeout.
//
// Scripts implements expand.Source so it can be chained after the static
// shortcut table:
//
//	scripts, err := lua.NewScripts()
//	if err != nil {
//	    return err
//	}
//	defer scripts.Close()
//	if err := scripts.LoadFile("shortcuts.lua"); err != nil {
//	    return err
//	}
//	source := expand.Chain(table, scripts)
package lua
