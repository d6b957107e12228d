package gridout

import (
	"bytes"
	"encoding/base64"
)

// Triple is one decoded (row, col, type, id) record from the compact
// persistence format (spec.md S6). Type is 'm' for a mutation footprint
// cell or 'c' for a crop cell.
type Triple struct {
	Row, Col int
	Type     byte
	ID       string
}

// EncodeCompact serializes every occupied (mutation or crop) cell of g
// into the base64'd (row, col, type, id) triple list spec.md S6 names as
// the host persistence contract. Empty and empty-zone cells are omitted;
// a host reconstructs them from the unlocked set plus isolation rules.
func EncodeCompact(g Grid) string {
	var buf bytes.Buffer
	for y := 0; y < len(g.Cells); y++ {
		for x := 0; x < len(g.Cells[y]); x++ {
			cell := g.Cells[y][x]
			switch cell.Kind {
			case CellMutationArea:
				writeTriple(&buf, y, x, 'm', string(cell.MutationArea.ID))
			case CellCrop:
				writeTriple(&buf, y, x, 'c', string(cell.Crop.PrimaryServer))
			}
		}
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

// writeTriple appends one fixed-header, variable-id record: row, col,
// type, then a length-prefixed id.
func writeTriple(buf *bytes.Buffer, row, col int, typ byte, id string) {
	buf.WriteByte(byte(row))
	buf.WriteByte(byte(col))
	buf.WriteByte(typ)
	buf.WriteByte(byte(len(id)))
	buf.WriteString(id)
}

// DecodeCompact parses a string produced by EncodeCompact back into its
// Triple records. Returns ErrMalformedCompact if the payload is not valid
// base64 or does not decode into a whole number of well-formed records.
func DecodeCompact(s string) ([]Triple, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrMalformedCompact
	}

	var out []Triple
	i := 0
	for i < len(data) {
		if i+4 > len(data) {
			return nil, ErrMalformedCompact
		}
		row, col, typ, idLen := int(data[i]), int(data[i+1]), data[i+2], int(data[i+3])
		i += 4
		if i+idLen > len(data) {
			return nil, ErrMalformedCompact
		}
		out = append(out, Triple{Row: row, Col: col, Type: typ, ID: string(data[i : i+idLen])})
		i += idLen
	}
	return out, nil
}
