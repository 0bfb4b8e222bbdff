package codec

import (
	"encoding/hex"
	"os"

	"gopkg.in/yaml.v2"
)

type bytesCodecsFixture struct {
	BytesCodecs []struct {
		Desc      string `yaml:"desc"`
		Bytes     string `yaml:"bytes"`
		Base58    string `yaml:"base58"`
		Base64    string `yaml:"base64"`
		Base64URL string `yaml:"base64_url"`
	} `yaml:"bytes_codecs"`
	Invalid struct {
		Base58    []string `yaml:"base58"`
		Base64    []string `yaml:"base64"`
		Base64URL []string `yaml:"base64_url"`
	} `yaml:"invalid"`
}

type u64Base64Fixture struct {
	U64Base64 []struct {
		Word   uint64 `yaml:"word"`
		Base64 string `yaml:"base64"`
	} `yaml:"u64_base64"`
}

func strToHex(str string) []byte {
	if len(str) == 0 {
		return []byte{}
	}
	res, err := hex.DecodeString(str[2:])
	if err != nil {
		panic(err)
	}
	return res
}

func loadYaml(path string, fixture interface{}) {
	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := yaml.Unmarshal(file, fixture); err != nil {
		panic(err)
	}
}

func mustDecodeHex(v string) []byte {
	decoded, err := hex.DecodeString(v)
	if err != nil {
		panic(err)
	}
	return decoded
}
