package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const DefaultFile = ".env"

// Load читает переменные из файла, если он существует.
// Уже заданные переменные окружения не перезаписываются.
func Load(path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}
