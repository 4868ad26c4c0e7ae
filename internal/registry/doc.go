// Package registry provides the reference conversion registry used by the
// chooser strategies and the CLI.
//
// The registry maps every atomic catalog unit to an exact rational scale
// relative to the coherent base units; derived units take their scale from
// their definition and prefixes contribute their own factor. It also holds
// symbol, name and plural aliases for catalog units and dimensions.
package registry
