//go:build !noasm

package hwy

const noasm = false
