// Package verify cross-checks the accelerated and scalar bodies of the hwy
// operations on the machine it runs on.
//
// The library is built twice: once normally (build A) and once with the
// noasm tag (build S), which forces every operation onto its scalar body.
// Both builds link the same sample set: parameterless methods on zero-size
// owner types, identified by fully qualified name. The Verifier runs every
// sample in both builds and compares the results bit for bit.
//
// Build A is usually the current process (LocalImage). Build S always runs
// as a separate process (ProcessImage) speaking a line-delimited JSON
// protocol, so the two builds share no globals, no capability cache and no
// type identity. A meta sample that reports DispatchDisabled must return
// false in A and true in S; otherwise the run fails before comparing
// anything, since it would be comparing a build with itself.
package verify
