package ui

import "github.com/tidwall/pretty"

// JSON colours encoded JSON. Layout is kept as it is; input is returned
// untouched when styling is off.
func (u UI) JSON(data []byte) string {
	if !u.enabled {
		return string(data)
	}
	return string(pretty.Color(data, u.json))
}
