package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path"
	"path/filepath"
	"strings"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	fileName := os.Getenv("GOFILE")
	src, err := os.ReadFile(path.Join(cwd, fileName))
	if err != nil {
		return err
	}
	formattedSource, err := render(fileName, src)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath(cwd, fileName), formattedSource, 0644)
}

// render returns the formatted codec source for the structs in src.
func render(fileName string, src []byte) ([]byte, error) {
	info, err := parsePackageInfo(fileName, src)
	if err != nil {
		return nil, err
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}
	info.CleanImports()
	info.Sort()

	byteWriter := bytes.NewBuffer([]byte{})
	if err := generateTemplate(info, byteWriter); err != nil {
		return nil, err
	}
	return format.Source(byteWriter.Bytes())
}

func outputPath(dir, fileName string) string {
	baseName := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if strings.HasSuffix(baseName, "_test") {
		baseWithoutTest := strings.TrimSuffix(baseName, "_test")
		return path.Join(dir, fmt.Sprintf("%s_codec_test.go", baseWithoutTest))
	}
	return path.Join(dir, fmt.Sprintf("%s_codec.go", baseName))
}
