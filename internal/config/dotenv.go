package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvPathVar names the variable that overrides the .env location.
const dotEnvPathVar = "DOTENV"

// loadDotEnv reads the file named by $DOTENV, or ./.env, into the process
// environment. A missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv(dotEnvPathVar)
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading dotenv file %q: %w", path, err)
	}

	return nil
}
