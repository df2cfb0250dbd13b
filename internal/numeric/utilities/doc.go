// Package utilities holds the per-type constant table of the numeric
// engine and the iterative pi algorithm the pi-derived constants use.
//
// Each constant has its own specialization slot, so a type that cannot
// represent pi still gets Zero, One and Ten.
package utilities
