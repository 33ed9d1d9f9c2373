package data

import (
	_ "embed"
)

// Heroes is the superhero demo dataset loaded by the fixture loader.
//
//go:embed fixtures/heroes.json
var Heroes []byte
