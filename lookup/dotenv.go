package lookup

import (
	"fmt"

	"github.com/joho/godotenv"
)

// ParseDotenv parses the contents of a .env file into a map. Lookups into the
// returned map go through tryget.TryGet; nothing is written to the process environment.
func ParseDotenv(src string) (map[string]string, error) {
	vars, err := godotenv.Unmarshal(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dotenv: %w", err)
	}
	return vars, nil
}
