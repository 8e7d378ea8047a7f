package envbind

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadEnv loads the named .env files into the process environment before
// any binding is declared. With no arguments it loads the default .env from
// the current working directory. Variables already present in the
// environment keep their values (dotenv convention). LoadEnv does not
// require Init.
func LoadEnv(files ...string) error {
	return godotenv.Load(files...)
}

// MustLoadEnv works like LoadEnv but panics when loading fails. Useful in
// development entrypoints where a broken .env should prevent startup.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}
