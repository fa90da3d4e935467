// Package trace parses and replays malloc-lab trace files: line-oriented
// scripts of allocate/free/realloc operations against a malloc.Heap,
// shared by the mallocctl CLI and the heapviz TUI so both tools drive
// the engine identically.
package trace
