// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"sync"

	"github.com/ik5/mp3seek/formats/mp3/internal/bitstream"
)

var errBadHuffmanCode = errors.New("invalid Huffman code")

// huffmanSpec describes one Layer III Huffman table: dim is the number of
// values per coordinate and linbits the escape width for 15.
type huffmanSpec struct {
	dim     int
	linbits int
	codes   []uint32
	lens    []uint8
}

// huffTree is a binary decode tree. A negative child -(sym+1) is a leaf;
// zero marks a missing branch since the root is never a child.
type huffTree struct {
	nodes [][2]int32
}

func buildHuffTree(s huffmanSpec) *huffTree {
	t := &huffTree{nodes: make([][2]int32, 1, 2*len(s.codes))}
	for sym, code := range s.codes {
		n := int(s.lens[sym])
		if n == 0 {
			continue
		}
		node := 0
		for b := n - 1; b >= 0; b-- {
			bit := code >> b & 1
			if b == 0 {
				t.nodes[node][bit] = -int32(sym) - 1
				break
			}
			next := t.nodes[node][bit]
			if next <= 0 {
				next = int32(len(t.nodes))
				t.nodes = append(t.nodes, [2]int32{})
				t.nodes[node][bit] = next
			}
			node = int(next)
		}
	}
	return t
}

// huffTrees builds each table's tree on first use. Tables that differ only
// in linbits share one tree.
var huffTrees = func() (trees [34]func() *huffTree) {
	for i, s := range huffmanSpecs {
		switch {
		case s.dim == 0:
		case i > 16 && i < 24:
			trees[i] = trees[16]
		case i > 24 && i < 32:
			trees[i] = trees[24]
		default:
			trees[i] = sync.OnceValue(func() *huffTree { return buildHuffTree(s) })
		}
	}
	return trees
}()

func (t *huffTree) decode(r *bitstream.Reservoir) (int, error) {
	node := int32(0)
	for {
		bit, err := r.GetBit()
		if err != nil {
			return 0, err
		}
		b := 0
		if bit {
			b = 1
		}
		next := t.nodes[node][b]
		switch {
		case next < 0:
			return int(-next - 1), nil
		case next == 0:
			return 0, errBadHuffmanCode
		}
		node = next
	}
}

// readPair decodes one big_values pair with its escapes and signs.
func readPair(r *bitstream.Reservoir, table int) (x, y int, err error) {
	s := huffmanSpecs[table]
	if s.dim == 0 {
		return 0, 0, nil
	}
	sym, err := huffTrees[table]().decode(r)
	if err != nil {
		return 0, 0, err
	}
	x, y = sym/s.dim, sym%s.dim
	if x, err = finishValue(r, x, s.linbits); err != nil {
		return 0, 0, err
	}
	y, err = finishValue(r, y, s.linbits)
	return x, y, err
}

func finishValue(r *bitstream.Reservoir, v, linbits int) (int, error) {
	if linbits > 0 && v == 15 {
		ext, err := r.GetBits(linbits)
		if err != nil {
			return 0, err
		}
		v += int(ext)
	}
	if v == 0 {
		return 0, nil
	}
	neg, err := r.GetBit()
	if neg {
		v = -v
	}
	return v, err
}

// readQuad decodes one count1 quadruple using table 32 (A) or 33 (B).
func readQuad(r *bitstream.Reservoir, table int) (q [4]int, err error) {
	sym, err := huffTrees[32+table]().decode(r)
	if err != nil {
		return q, err
	}
	for i := range q {
		if sym>>(3-i)&1 == 0 {
			continue
		}
		neg, err := r.GetBit()
		if err != nil {
			return q, err
		}
		q[i] = 1
		if neg {
			q[i] = -1
		}
	}
	return q, nil
}
