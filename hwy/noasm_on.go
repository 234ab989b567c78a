//go:build noasm

package hwy

// noasm builds compile no accelerated body and detect nothing.
const noasm = true
