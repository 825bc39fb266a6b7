package storage

// Storage is the contract every storage leaf and every view over storage
// satisfies: a shape, a runtime element type, and the device the data lives on.
//
// Conversion policies receive leaves as opaque values and must return values
// that still satisfy Storage when the leaf sits inside a view.
type Storage interface {
	Shape() Shape
	DType() DataType
	Device() Device
}
