package fuzztests

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addReadmeSeeds(f)
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
}

var builtinSeeds = []string{
	"",
	"let five = 5;\nlet ten = 10;\nlet add = fn(x, y) { x + y; };\nlet result = add(five, ten);",
	"!-/*5;\n5 < 10 > 5;",
	"if (5 < 10) { return true; } else { return false; }",
	"10 == 10; 10 != 9;",
	"a + b * c + d / e - f",
	"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))",
	"let = 5; let x 5; let 838383;",
	"99999999999999999999",
	"fn(a, { }",
	"if (x { y }",
	"é @ # $",
	"{",
	";;;",
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.mk файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".mk" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// addReadmeSeeds добавляет блоки ```monkey из README.md.
func addReadmeSeeds(f *testing.F) {
	readme := filepath.Join("..", "..", "README.md")
	// #nosec G304 -- path is a fixed repository location
	data, err := os.ReadFile(readme)
	if err != nil {
		return
	}
	var block [][]byte
	inBlock := false
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		trimmed := strings.TrimSpace(string(line))
		if strings.HasPrefix(trimmed, "```monkey") {
			inBlock = true
			block = block[:0]
			continue
		}
		if strings.HasPrefix(trimmed, "```") {
			if inBlock {
				if snippet := clampSeed(bytes.Join(block, []byte{'\n'})); len(snippet) > 0 {
					f.Add(snippet)
				}
			}
			inBlock = false
			continue
		}
		if inBlock {
			block = append(block, line)
		}
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
