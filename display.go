package main

import (
	"bufio"
	"fmt"
	"io"
)

// Display is the contract a presenter implements to consume one
// rendered frame. spec.md puts the actual window/display surface out
// of scope; the rasterizer and Scene types never depend on this
// interface, only main.go does, so the core pipeline stays
// presenter-agnostic (§6.2).
type Display interface {
	Present(fb *Framebuffer) error
}

// ANSIDisplay renders a frame as truecolor ANSI escape codes, two
// characters per pixel to approximate a square cell, grounded on the
// teacher's renderer_terminal.go.
type ANSIDisplay struct {
	w *bufio.Writer
}

func NewANSIDisplay(w io.Writer) *ANSIDisplay {
	return &ANSIDisplay{w: bufio.NewWriter(w)}
}

func (d *ANSIDisplay) Present(fb *Framebuffer) error {
	fmt.Fprint(d.w, "\033[H")
	for y := 0; y < fb.N; y++ {
		for x := 0; x < fb.N; x++ {
			c := fb.Color[fb.idx(x, y)]
			fmt.Fprint(d.w, c.ToANSI(), "██")
		}
		fmt.Fprint(d.w, ColorReset(), "\n")
	}
	return d.w.Flush()
}

func (d *ANSIDisplay) Reset() error {
	_, err := fmt.Fprint(d.w, "\033[0m\n")
	d.w.Flush()
	return err
}
