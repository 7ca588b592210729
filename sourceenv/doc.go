// Package sourceenv supplies raw key/value pairs for parsing, from the
// process environment or from dotenv files.
//
// Prefix filtering, key splitting, and coercion all happen in the parser;
// this package only gathers entries.
//
// Example:
//
//	parser, _ := envjson.New(envjson.WithPrefix("APP"))
//	doc := parser.ParsePairs(sourceenv.Environ())
package sourceenv
