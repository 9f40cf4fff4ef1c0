package prism

import _ "embed"

// WGSL sources for the two pipeline variants, embedded at build time.

//go:embed shaders/textured.wgsl
var texturedWGSL string

//go:embed shaders/procedural.wgsl
var proceduralWGSL string
