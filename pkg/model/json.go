package model

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// JSONSource reads models from JSON documents:
//
//	{
//	  "modules": [
//	    {"name": "", "type": "Sequential"},
//	    {"name": "0", "type": "Linear"},
//	    {"name": "1", "type": "ReLU"}
//	  ],
//	  "parameters": [
//	    {"name": "0.weight", "shape": [2, 3], "data": [0.1, 0.2, 0.3, 0.4, 0.5, 0.6]},
//	    {"name": "0.bias", "shape": [2], "data": [0.0, 0.1]}
//	  ]
//	}
//
// Array order is declaration order. A parameter without "shape" is treated
// as a vector of its data length.
type JSONSource struct{}

func (JSONSource) Type() string { return "json" }

func (JSONSource) Supports(name string) bool {
	return strings.EqualFold(extOf(name), ".json")
}

func (JSONSource) Read(r io.Reader) (*Static, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return doc.toStatic(), nil
}
