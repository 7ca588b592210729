package sourceenv

import (
	"fmt"
	"os"
	"strings"

	"github.com/Azhovan/envjson"
	"github.com/joho/godotenv"
)

// Environ returns the process environment as raw pairs, in the order
// os.Environ reports them.
func Environ() []envjson.Pair {
	env := os.Environ()
	pairs := make([]envjson.Pair, 0, len(env))

	for _, kv := range env {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		pairs = append(pairs, envjson.Pair{Key: parts[0], Value: parts[1]})
	}

	return pairs
}

// File reads a dotenv file and returns its entries. The result feeds
// directly into Parser.Parse.
func File(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return vars, nil
}
