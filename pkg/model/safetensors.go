package model

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/x448/float16"

	"github.com/matzehuels/fcviz/pkg/errors"
)

// SafeTensors layout:
// [8 bytes: header_size (uint64 LE)]
// [header_size bytes: JSON header]
// [tensor data: raw bytes]

const (
	// maxHeaderSize rejects corrupt files before allocating.
	maxHeaderSize = 100 * 1024 * 1024

	metadataKey = "__metadata__"

	// ModulesMetadataKey is the metadata entry holding a JSON array of
	// {"name", "type"} objects in declaration order.
	ModulesMetadataKey = "modules"
)

type tensorInfo struct {
	DType       string   `json:"dtype"`
	Shape       []int    `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// SafeTensorsSource reads *.safetensors weight files.
//
// SafeTensors stores no module structure and its header is an unordered
// JSON object, so order is recovered as follows:
//
//   - If the "modules" metadata entry is present, it is the module listing
//     and parameters are ordered by the declaration order of their owning
//     module.
//   - Otherwise parameters are ordered by natural name order ("2.weight"
//     before "10.weight") and the listing is synthesized: the root followed
//     by one "Linear" module per owning path. No activation can be detected
//     in that case; [Static.SyntheticModules] is set.
//
// Supported dtypes: F64, F32, F16, BF16.
type SafeTensorsSource struct{}

func (SafeTensorsSource) Type() string { return "safetensors" }

func (SafeTensorsSource) Supports(name string) bool {
	return strings.EqualFold(extOf(name), ".safetensors")
}

func (SafeTensorsSource) Read(r io.Reader) (*Static, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, fmt.Errorf("read header size: %w", err)
	}
	if headerSize > maxHeaderSize {
		return nil, fmt.Errorf("invalid header size: %d (too large)", headerSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(headerBytes, &raw); err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tensor data: %w", err)
	}

	var metadata map[string]string
	infos := make(map[string]tensorInfo, len(raw))
	for key, value := range raw {
		if key == metadataKey {
			if err := json.Unmarshal(value, &metadata); err != nil {
				return nil, fmt.Errorf("parse metadata: %w", err)
			}
			continue
		}
		var info tensorInfo
		if err := json.Unmarshal(value, &info); err != nil {
			return nil, fmt.Errorf("parse tensor %s: %w", key, err)
		}
		infos[key] = info
	}

	params := make([]Parameter, 0, len(infos))
	for name, info := range infos {
		values, err := decodeTensor(name, info, data)
		if err != nil {
			return nil, err
		}
		shape := info.Shape
		if len(shape) == 0 {
			// Scalar tensor.
			shape = []int{1}
		}
		params = append(params, Parameter{Name: name, Tensor: Tensor{Shape: shape, Data: values}})
	}

	m := &Static{Params: params}
	if listing, ok := metadata[ModulesMetadataKey]; ok {
		var entries []moduleEntry
		if err := json.Unmarshal([]byte(listing), &entries); err != nil {
			return nil, fmt.Errorf("parse %q metadata: %w", ModulesMetadataKey, err)
		}
		for _, e := range entries {
			m.Mods = append(m.Mods, Module{Name: e.Name, Type: e.Type})
		}
		sortByDeclaration(m.Params, m.Mods)
		return m, nil
	}

	slices.SortFunc(m.Params, func(a, b Parameter) int { return naturalCompare(a.Name, b.Name) })
	m.Mods = synthesizeModules(m.Params)
	m.SyntheticModules = true
	return m, nil
}

func decodeTensor(name string, info tensorInfo, data []byte) ([]float64, error) {
	start, end := info.DataOffsets[0], info.DataOffsets[1]
	if start < 0 || end < start || end > int64(len(data)) {
		return nil, errors.New(errors.ErrCodeInvalidModel, "tensor %s: invalid data offsets [%d, %d]", name, start, end)
	}
	buf := data[start:end]

	var (
		width  int
		decode func([]byte) float64
	)
	switch info.DType {
	case "F64":
		width = 8
		decode = func(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) }
	case "F32":
		width = 4
		decode = func(b []byte) float64 { return float64(math.Float32frombits(binary.LittleEndian.Uint32(b))) }
	case "F16":
		width = 2
		decode = func(b []byte) float64 { return float64(float16.Frombits(binary.LittleEndian.Uint16(b)).Float32()) }
	case "BF16":
		width = 2
		decode = func(b []byte) float64 {
			return float64(math.Float32frombits(uint32(binary.LittleEndian.Uint16(b)) << 16))
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "tensor %s: unsupported dtype %s", name, info.DType)
	}

	if len(buf)%width != 0 {
		return nil, errors.New(errors.ErrCodeInvalidModel, "tensor %s: %d bytes is not a multiple of %s width", name, len(buf), info.DType)
	}
	values := make([]float64, len(buf)/width)
	for i := range values {
		values[i] = decode(buf[i*width : (i+1)*width])
	}
	return values, nil
}

// sortByDeclaration orders parameters by the position of their owning
// module in mods. Parameters whose owner is not listed go last.
func sortByDeclaration(params []Parameter, mods []Module) {
	pos := make(map[string]int, len(mods))
	for i, m := range mods {
		pos[m.Name] = i
	}
	rank := func(p Parameter) int {
		if i, ok := pos[OwnerPath(p.Name)]; ok {
			return i
		}
		return len(mods)
	}
	slices.SortStableFunc(params, func(a, b Parameter) int {
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra - rb
		}
		return naturalCompare(a.Name, b.Name)
	})
}

func synthesizeModules(params []Parameter) []Module {
	mods := []Module{{Name: "", Type: "Module"}}
	seen := map[string]bool{"": true}
	for _, p := range params {
		owner := OwnerPath(p.Name)
		if seen[owner] {
			continue
		}
		seen[owner] = true
		mods = append(mods, Module{Name: owner, Type: "Linear"})
	}
	return mods
}

// OwnerPath returns the dotted path of the module owning a parameter:
// the name with its final segment removed ("" for root-level parameters).
func OwnerPath(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return ""
}

// LeafName returns the final segment of a dotted path.
func LeafName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
