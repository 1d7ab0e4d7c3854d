package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads path (e.g. ".env") and sets an environment variable for each
// KEY=VALUE line. Blank lines and # comments are skipped, surrounding quotes
// are stripped, and variables already present in the environment win.
// A missing file is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("env: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("env: %w", err)
	}
	return nil
}

func parseLine(raw string) (key, value string, ok bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	i := strings.Index(line, "=")
	if i <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	value = strings.TrimSpace(line[i+1:])
	if key == "" {
		return "", "", false
	}
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// Settings are the process-level knobs read from the environment.
// Zero values mean "use the flag or built-in default".
type Settings struct {
	ConfigPath string
	LogPath    string
	Width      int
	Height     int
	Title      string
	Seed       int64
	Font       string
}

// FromEnviron reads BACKDROP_* variables. Malformed numbers are ignored.
func FromEnviron() Settings {
	return Settings{
		ConfigPath: os.Getenv("BACKDROP_CONFIG"),
		LogPath:    os.Getenv("BACKDROP_LOG"),
		Width:      atoi(os.Getenv("BACKDROP_WIDTH")),
		Height:     atoi(os.Getenv("BACKDROP_HEIGHT")),
		Title:      os.Getenv("BACKDROP_TITLE"),
		Seed:       atoi64(os.Getenv("BACKDROP_SEED")),
		Font:       os.Getenv("BACKDROP_FONT"),
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func atoi64(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
