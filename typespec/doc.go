/*
Package typespec declares the types that command arguments and options may carry, and parses literal text against them.

A [Type] is one of three shapes:

  - a scalar, named by a kind registered with a [Registry] ("int", "string", and friends are built in)
  - an array of a single element [Type], written as '[v1,v2,...]'
  - a struct of named fields, written as '{key1=v1,key2=v2,...}'

Shapes nest to any depth, so '[{name:string,sizes:[int]}]' is a perfectly good descriptor.
Ready-made scalars are provided as [String], [Int], [Float], [Bool], and [Duration].

[Parse] turns literal text into a typed value:

	v, err := typespec.Parse(typespec.Array(typespec.Int), "[1, 2, 3]")
	// v is []any{int64(1), int64(2), int64(3)}

Arrays come back as []any, structs as map[string]any, and scalars as whatever their coercion produces.
Parsing failures are reported as a [ParseError] carrying the byte offset of the problem and wrapping one
of the sentinel errors in this package.
*/
package typespec
