package core

// Size describes the dimensions of a tile grid.
type Size struct {
	W int
	H int
}

// Scene defines the minimal contract the viewers need from a generated map.
type Scene interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Cells() []uint8
}
