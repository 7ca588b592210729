// Package envjson builds nested JSON-like documents from flat environment variables.
//
// Quick Start:
//
//	os.Setenv("APP__DATABASE__HOST", "db.internal")
//	os.Setenv("APP__DATABASE__PORT", "5432")
//	os.Setenv("APP__SERVERS__0", "alpha")
//
//	parser, err := envjson.New(envjson.WithPrefix("APP"))
//	doc := parser.ParseEnviron()
//	// map[database:map[host:db.internal port:5432] servers:[alpha]]
//
// Keys are split on a separator ("__" by default) into path segments; numeric
// segments become array indices, everything else becomes an object field.
// Values coerce to bool, int64, or float64 when they parse as one and stay
// strings otherwise. Include/exclude patterns filter keys, and a base document
// supplies defaults that parsed values are merged over.
//
// See example_test.go for detailed usage.
package envjson
