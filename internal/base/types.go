package base

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// AirName is the identifier every new grid cell holds.
const AirName = "minecraft:air"

var (
	// ErrMalformedBracket is returned when a property list is opened with '[' but not closed with ']'.
	ErrMalformedBracket = errors.New("malformed block: property list not terminated by ']'")
	// ErrMissingEquals is returned when a property clause has no '='.
	ErrMissingEquals = errors.New("malformed block: property clause without '='")
	// ErrOutOfBounds is returned when a position lies outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Air is the default block of a grid.
var Air = Block{id: AirName, key: AirName, set: true}

// Block is an immutable block identifier with its properties,
// e.g. minecraft:oak_log[axis=y].
type Block struct {
	id         string
	properties map[string]string
	key        string // canonical form, cached at construction
	set        bool   // built by NewBlock or ParseBlock, even with an empty id
}

// NewBlock creates a block from an identifier and properties.
// The properties map is copied.
func NewBlock(id string, properties map[string]string) Block {
	var props map[string]string
	if len(properties) > 0 {
		props = maps.Clone(properties)
	}
	return Block{
		id:         id,
		properties: props,
		key:        canonical(id, props),
		set:        true,
	}
}

// ParseBlock parses a block state string in the form id or id[k=v,k=v].
// An empty string parses to a block with an empty id, which is kept as its
// own palette entry rather than being stored as air.
func ParseBlock(s string) (Block, error) {
	id, props, ok := strings.Cut(s, "[")
	if !ok {
		return NewBlock(id, nil), nil
	}
	props, ok = strings.CutSuffix(props, "]")
	if !ok {
		return Block{}, fmt.Errorf("%w: %q", ErrMalformedBracket, s)
	}

	properties := make(map[string]string)
	for part := range strings.SplitSeq(props, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return Block{}, fmt.Errorf("%w: %q in %q", ErrMissingEquals, part, s)
		}
		properties[key] = value
	}

	return Block{
		id:         id,
		properties: properties,
		key:        canonical(id, properties),
		set:        true,
	}, nil
}

// MustParseBlock is like ParseBlock but panics on malformed input.
func MustParseBlock(s string) Block {
	b, err := ParseBlock(s)
	if err != nil {
		panic(err)
	}
	return b
}

// ID returns the block identifier without properties.
func (b Block) ID() string {
	return b.id
}

// Property returns the value of a single property.
func (b Block) Property(key string) (string, bool) {
	v, ok := b.properties[key]
	return v, ok
}

// Properties returns a copy of the block properties.
func (b Block) Properties() map[string]string {
	return maps.Clone(b.properties)
}

// IsZero reports whether b is the zero Block, as opposed to one built by
// NewBlock or ParseBlock.
func (b Block) IsZero() bool {
	return !b.set
}

// Equal reports whether both blocks have the same identifier and property set.
func (b Block) Equal(o Block) bool {
	return b.id == o.id && maps.Equal(b.properties, o.properties)
}

// String returns the canonical form of the block, with properties in sorted key order.
func (b Block) String() string {
	return b.key
}

func canonical(id string, properties map[string]string) string {
	if len(properties) == 0 {
		return id
	}

	var buf strings.Builder
	buf.WriteString(id)
	buf.WriteByte('[')
	for i, k := range slices.Sorted(maps.Keys(properties)) {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(properties[k])
	}
	buf.WriteByte(']')
	return buf.String()
}

// Pos is a position inside a grid, as x, y, z.
type Pos [3]int

// X returns the x coordinate of the position.
func (p Pos) X() int { return p[0] }

// Y returns the y coordinate of the position.
func (p Pos) Y() int { return p[1] }

// Z returns the z coordinate of the position.
func (p Pos) Z() int { return p[2] }

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p[0], p[1], p[2])
}
