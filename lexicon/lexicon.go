// Package lexicon reads newline-delimited word lists, one fixed-length
// word per line.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jakobteuber/wordle/cache"
	"github.com/jakobteuber/wordle/word"
)

// Load parses a word list from a byte stream. Blank lines and lines
// starting with # are skipped; any other malformed line is an error,
// reported with its line number rather than silently dropped.
func Load(r io.Reader) ([]word.Word, error) {
	var words []word.Word
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := word.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// LoadFile reads a word list from disk.
func LoadFile(path string) ([]word.Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()
	return Load(file)
}

// Get fetches a word list through the global object cache, so a list
// used by several games in one process is parsed exactly once.
func Get(path string) ([]word.Word, error) {
	obj, err := cache.Load("lexicon:"+path, func(key string) (interface{}, error) {
		words, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", path).Int("words", len(words)).Msg("loaded word list")
		return words, nil
	})
	if err != nil {
		return nil, err
	}
	return obj.([]word.Word), nil
}
