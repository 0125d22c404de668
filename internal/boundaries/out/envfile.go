package out

import "context"

// EnvFile defines the contract for dotenv files holding crontab variables.
type EnvFile interface {
	// Read parses a dotenv file into a name to value map.
	Read(ctx context.Context, path string) (map[string]string, error)

	// Write serializes the variables into a dotenv file.
	Write(ctx context.Context, path string, vars map[string]string) error
}
