package codegen

import "bdl/internal/cpp"

// Options controls the shape of the generated C++
type Options struct {
	// EntryName is the function that receives the top-level statements
	EntryName string
	// Includes are emitted in order at the top of the output
	Includes []string
	// IndentWidth is the number of spaces per nesting level
	IndentWidth int
}

func DefaultOptions() Options {
	return Options{
		EntryName:   "main",
		Includes:    []string{"bits/stdc++.h"},
		IndentWidth: cpp.DefaultIndentWidth,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.EntryName == "" {
		o.EntryName = d.EntryName
	}
	if o.Includes == nil {
		o.Includes = d.Includes
	}
	if o.IndentWidth <= 0 {
		o.IndentWidth = d.IndentWidth
	}
	return o
}
