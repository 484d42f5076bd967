package edgelist

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cyclecheck/pkg/errors"
)

type tomlList struct {
	Name  string    `toml:"name"`
	Edges [][]int64 `toml:"edges"`
}

func readTOML(r io.Reader) (*List, error) {
	var data tomlList
	md, err := toml.NewDecoder(r).Decode(&data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown toml keys: %s", strings.Join(keys, ", "))
	}

	l := &List{Name: data.Name, Edges: make([]Edge, 0, len(data.Edges))}
	for i, pair := range data.Edges {
		if len(pair) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "edge %d has %d endpoints, want 2", i, len(pair))
		}
		l.Edges = append(l.Edges, Edge{Source: pair[0], Destination: pair[1]})
	}
	return l, nil
}
