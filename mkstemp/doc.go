// Package mkstemp creates files under unique, randomly chosen names.
//
// A name is made of a caller-supplied prefix, a span of random symbols,
// and a suffix. Creation is exclusive: should a file with that name exist,
// only the random span is regenerated and creation is tried again,
// up to a bounded number of attempts. Any other failure ends the attempts.
//
// The operating system is reached through Primitive, which has
// exactly one implementation per platform family (unix, windows).
package mkstemp // import "blitznote.com/src/tmpfile/mkstemp"
