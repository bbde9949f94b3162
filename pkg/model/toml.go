package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLSource reads models from TOML documents using arrays of tables:
//
//	[[modules]]
//	name = ""
//	type = "Sequential"
//
//	[[modules]]
//	name = "0"
//	type = "Linear"
//
//	[[parameters]]
//	name  = "0.weight"
//	shape = [1, 2]
//	data  = [0.5, -0.5]
type TOMLSource struct{}

func (TOMLSource) Type() string { return "toml" }

func (TOMLSource) Supports(name string) bool {
	return strings.EqualFold(extOf(name), ".toml")
}

func (TOMLSource) Read(r io.Reader) (*Static, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys: %v", undecoded)
	}
	return doc.toStatic(), nil
}

func extOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}
