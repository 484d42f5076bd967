package edgelist

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/cyclecheck/pkg/errors"
)

type jsonList struct {
	Name  string     `json:"name,omitempty"`
	Edges []jsonEdge `json:"edges"`
}

// jsonEdge keeps endpoints as json.Number so fractions and values beyond the
// int64 range are reported instead of silently converted.
type jsonEdge struct {
	Source      json.Number `json:"source"`
	Destination json.Number `json:"destination"`
}

func readJSON(r io.Reader) (*List, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var data jsonList
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case err == io.EOF:
	case err != nil:
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json: trailing data")
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "decode json: unexpected value after the edge list")
	}
	return data.toList()
}

func (d jsonList) toList() (*List, error) {
	l := &List{Name: d.Name, Edges: make([]Edge, 0, len(d.Edges))}
	for i, e := range d.Edges {
		src, err := errors.ParseVertexID(e.Source.String())
		if err != nil {
			return nil, fmt.Errorf("edge %d source: %w", i, err)
		}
		dst, err := errors.ParseVertexID(e.Destination.String())
		if err != nil {
			return nil, fmt.Errorf("edge %d destination: %w", i, err)
		}
		l.Edges = append(l.Edges, Edge{Source: src, Destination: dst})
	}
	return l, nil
}
