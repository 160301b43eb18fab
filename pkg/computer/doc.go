// Package computer assembles computer configurations step by step.
//
// Builder accumulates optional components in any order and Build validates the
// result, returning an immutable Computer value:
//
//	pc, err := computer.NewBuilder().
//		WithCPU("Intel i7").
//		WithRAM(16).
//		WithGPU("Nvidia GTX 1080").
//		WithStorage("1TB SSD").
//		Build()
//
// CPU and RAM are required. A missing one makes Build return a
// *ValidationError matching ErrMissingComponent; the setters themselves never
// fail.
package computer
