package kind

import "github.com/born-ml/tenskind/internal/comp"

// Test components.

type col struct{}

func (col) Name() string { return "col" }
func (col) Size() int    { return 3 }

type spin struct{}

func (spin) Name() string { return "spin" }
func (spin) Size() int    { return 4 }

type compl struct{}

func (compl) Name() string { return "compl" }
func (compl) Size() int    { return 2 }

type dir struct{}

func (dir) Name() string { return "dir" }
func (dir) Size() int    { return 4 }

type space struct{}

func (space) Name() string { return "space" }

var tau = comp.Dyn("tau")
