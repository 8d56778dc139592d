// Package rbxlx writes scene nodes as a Roblox XML place file.
package rbxlx

import (
	"bufio"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Faultbox/blsconv/internal/scene"
)

// RefFunc produces unique item referents.
type RefFunc func() string

// Referent returns a random referent: "RBX" and 32 uppercase hex digits.
func Referent() string {
	id := uuid.New()
	return "RBX" + strings.ToUpper(hex.EncodeToString(id[:]))
}

// Encoder writes a place file.
type Encoder struct {
	w   *bufio.Writer
	ref RefFunc
	err error
}

// NewEncoder creates an encoder writing to w with random referents.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w), ref: Referent}
}

// SetReferents replaces the referent source.
func (e *Encoder) SetReferents(fn RefFunc) {
	e.ref = fn
}

// Encode writes a complete place holding nodes in the workspace.
func (e *Encoder) Encode(nodes []*scene.Node) error {
	e.print(header)
	for _, n := range nodes {
		e.item(n, 2)
	}
	e.print(footer)
	if e.err != nil {
		return fmt.Errorf("writing place: %w", e.err)
	}
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("writing place: %w", err)
	}
	return nil
}

func (e *Encoder) print(s string) {
	if e.err == nil {
		_, e.err = e.w.WriteString(s)
	}
}

func (e *Encoder) printf(format string, args ...any) {
	if e.err == nil {
		_, e.err = fmt.Fprintf(e.w, format, args...)
	}
}

func (e *Encoder) item(n *scene.Node, depth int) {
	indent := strings.Repeat("\t", depth)
	e.printf("%s<Item class=\"%s\" referent=\"%s\">\n", indent, n.Class, e.ref())
	e.printf("%s\t<Properties>\n", indent)

	names := make([]string, 0, len(n.Props))
	for name := range n.Props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e.property(name, n.Props[name], depth+2)
	}

	e.printf("%s\t</Properties>\n", indent)
	for _, child := range n.Children {
		e.item(child, depth+1)
	}
	e.printf("%s</Item>\n", indent)
}

func (e *Encoder) property(name string, v scene.Value, depth int) {
	indent := strings.Repeat("\t", depth)
	tag := v.Tag()
	e.printf("%s<%s name=\"%s\">", indent, tag, escape(name))

	switch v := v.(type) {
	case scene.Bool:
		e.print(strconv.FormatBool(bool(v)))
	case scene.Float:
		e.print(FormatFloat(float32(v)))
	case scene.Token:
		e.print(strconv.FormatUint(uint64(v), 10))
	case scene.Int:
		e.print(strconv.FormatInt(int64(v), 10))
	case scene.String:
		e.print(escape(string(v)))
	case scene.Color:
		e.print(strconv.FormatUint(uint64(v.Packed()), 10))
	case scene.PhysicalProperties:
		e.printf("\n%s\t<CustomPhysics>%t</CustomPhysics>\n%s", indent, v.CustomPhysics, indent)
	case scene.Vector3:
		e.fields(indent, []string{"X", "Y", "Z"}, v[:])
	case scene.CFrame:
		r := v.Rotation
		e.fields(indent, cframeFields, []float32{
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			r.At(0, 0), r.At(0, 1), r.At(0, 2),
			r.At(1, 0), r.At(1, 1), r.At(1, 2),
			r.At(2, 0), r.At(2, 1), r.At(2, 2),
		})
	default:
		if e.err == nil {
			e.err = fmt.Errorf("property %q: unsupported value %T", name, v)
		}
	}
	e.printf("</%s>\n", tag)
}

var cframeFields = []string{"X", "Y", "Z", "R00", "R01", "R02", "R10", "R11", "R12", "R20", "R21", "R22"}

func (e *Encoder) fields(indent string, names []string, values []float32) {
	e.print("\n")
	for i, name := range names {
		e.printf("%s\t<%s>%s</%s>\n", indent, name, FormatFloat(values[i]), name)
	}
	e.print(indent)
}

// FormatFloat prints f in the shortest form that reads back exactly.
func FormatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
