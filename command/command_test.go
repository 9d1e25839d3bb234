package command

import (
	"errors"
	"testing"

	"github.com/gogpu/studio/document"
	"github.com/gogpu/studio/layer"
)

// stack returns a document with layers named a, b, c.
func stack(t *testing.T) *document.Document {
	t.Helper()
	doc := document.New("cmd", 10, 10)
	for _, name := range []string{"a", "b", "c"} {
		l := layer.NewRaster(10, 10)
		l.SetName(name)
		doc.AddLayer(l)
	}
	return doc
}

func order(doc *document.Document) string {
	s := ""
	for _, l := range doc.Layers() {
		s += l.Name()
	}
	return s
}

func TestApplyUndo(t *testing.T) {
	extra := layer.NewVector()
	extra.SetName("x")

	tests := []struct {
		name      string
		cmd       Command
		wantApply string
	}{
		{"add", &AddLayer{Layer: extra}, "abcx"},
		{"remove bottom", &RemoveLayer{Index: 0}, "bc"},
		{"remove top", &RemoveLayer{Index: 2}, "ab"},
		{"move up", &MoveLayer{From: 0, To: 2}, "bca"},
		{"move down", &MoveLayer{From: 2, To: 1}, "acb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := stack(t)
			if err := tt.cmd.Apply(doc); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got := order(doc); got != tt.wantApply {
				t.Errorf("after Apply order = %q, want %q", got, tt.wantApply)
			}
			if err := tt.cmd.Undo(doc); err != nil {
				t.Fatalf("Undo() error = %v", err)
			}
			if got := order(doc); got != "abc" {
				t.Errorf("after Undo order = %q, want %q", got, "abc")
			}
			if err := tt.cmd.Undo(doc); !errors.Is(err, ErrNotApplied) {
				t.Errorf("second Undo() error = %v, want ErrNotApplied", err)
			}
		})
	}
}

func TestPropertyCommands(t *testing.T) {
	doc := stack(t)

	opacity := &SetOpacity{Index: 1, Opacity: 3}
	visible := &SetVisible{Index: 1, Visible: false}
	rename := &Rename{Index: 1, To: "renamed"}

	opacity2 := &SetOpacity{Index: 1, Opacity: 0.25}
	for _, c := range []Command{opacity2, opacity, visible, rename} {
		if err := c.Apply(doc); err != nil {
			t.Fatalf("%s: Apply() error = %v", c.Name(), err)
		}
	}

	l, _ := doc.Layer(1)
	if l.Opacity() != 1 || l.Visible() || l.Name() != "renamed" {
		t.Fatalf("after Apply: opacity %v, visible %v, name %q", l.Opacity(), l.Visible(), l.Name())
	}

	// Undo must find the layer by id after it moved.
	doc.MoveLayer(1, 2)

	for _, c := range []Command{rename, visible, opacity} {
		if err := c.Undo(doc); err != nil {
			t.Fatalf("%s: Undo() error = %v", c.Name(), err)
		}
	}
	if l.Opacity() != 0.25 || !l.Visible() || l.Name() != "b" {
		t.Errorf("after Undo: opacity %v, visible %v, name %q", l.Opacity(), l.Visible(), l.Name())
	}
}

func TestOutOfRange(t *testing.T) {
	cmds := []Command{
		&RemoveLayer{Index: 3},
		&MoveLayer{From: 0, To: 5},
		&MoveLayer{From: -1, To: 0},
		&SetOpacity{Index: -1},
		&SetVisible{Index: 7},
		&Rename{Index: 3, To: "x"},
	}
	for _, c := range cmds {
		doc := stack(t)
		if err := c.Apply(doc); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("%s: Apply() error = %v, want ErrIndexOutOfRange", c.Name(), err)
		}
		if got := order(doc); got != "abc" {
			t.Errorf("%s: failed Apply changed order to %q", c.Name(), got)
		}
		if err := c.Undo(doc); !errors.Is(err, ErrNotApplied) {
			t.Errorf("%s: Undo() after failed Apply error = %v, want ErrNotApplied", c.Name(), err)
		}
	}
}

func TestUndoLayerGone(t *testing.T) {
	doc := stack(t)
	c := &SetVisible{Index: 0, Visible: false}
	if err := c.Apply(doc); err != nil {
		t.Fatal(err)
	}
	doc.RemoveLayer(0)
	if err := c.Undo(doc); !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("Undo() error = %v, want ErrLayerNotFound", err)
	}
}

func TestRemoveUndoAfterShrink(t *testing.T) {
	doc := stack(t)
	c := &RemoveLayer{Index: 2}
	if err := c.Apply(doc); err != nil {
		t.Fatal(err)
	}
	doc.RemoveLayer(0)
	doc.RemoveLayer(0)
	if err := c.Undo(doc); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if got := order(doc); got != "c" {
		t.Errorf("order = %q, want %q", got, "c")
	}
}

func TestAddNilLayer(t *testing.T) {
	for _, c := range []*AddLayer{{}, {Layer: (*layer.Raster)(nil)}} {
		if c.Name() != "Add layer" {
			t.Errorf("Name() = %q", c.Name())
		}
		doc := document.New("x", 1, 1)
		if err := c.Apply(doc); err == nil {
			t.Error("Apply() with nil layer succeeded")
		}
		if doc.LayerCount() != 0 {
			t.Errorf("LayerCount() = %d, want 0", doc.LayerCount())
		}
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{&AddLayer{Layer: layer.NewScene3D()}, "Add scene3d layer"},
		{&RemoveLayer{}, "Remove layer"},
		{&MoveLayer{}, "Move layer"},
		{&SetOpacity{}, "Change opacity"},
		{&SetVisible{Visible: true}, "Show layer"},
		{&SetVisible{}, "Hide layer"},
		{&Rename{}, "Rename layer"},
	}
	for _, tt := range tests {
		if got := tt.cmd.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestApplyTwice(t *testing.T) {
	tests := []struct {
		name      string
		cmd       func() Command
		wantApply string
	}{
		{"add", func() Command {
			x := layer.NewRaster(1, 1)
			x.SetName("x")
			return &AddLayer{Layer: x}
		}, "abcx"},
		{"remove", func() Command { return &RemoveLayer{Index: 0} }, "bc"},
		{"move", func() Command { return &MoveLayer{From: 0, To: 2} }, "bca"},
		{"rename", func() Command { return &Rename{Index: 1, To: "x"} }, "axc"},
		{"opacity", func() Command { return &SetOpacity{Index: 1, Opacity: 0.5} }, "abc"},
		{"visible", func() Command { return &SetVisible{Index: 1, Visible: false} }, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := stack(t)
			c := tt.cmd()
			if err := c.Apply(doc); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if err := c.Apply(doc); !errors.Is(err, ErrAlreadyApplied) {
				t.Fatalf("second Apply() error = %v, want ErrAlreadyApplied", err)
			}
			if got := order(doc); got != tt.wantApply {
				t.Errorf("after second Apply order = %q, want %q", got, tt.wantApply)
			}

			if err := c.Undo(doc); err != nil {
				t.Fatalf("Undo() error = %v", err)
			}
			if got := order(doc); got != "abc" {
				t.Errorf("after Undo order = %q, want %q", got, "abc")
			}
			b, _ := doc.Layer(1)
			if b.Opacity() != 1 || !b.Visible() {
				t.Errorf("after Undo: opacity %v, visible %v", b.Opacity(), b.Visible())
			}

			// Undo makes the command applicable again.
			if err := c.Apply(doc); err != nil {
				t.Fatalf("Apply() after Undo error = %v", err)
			}
			if got := order(doc); got != tt.wantApply {
				t.Errorf("after re-Apply order = %q, want %q", got, tt.wantApply)
			}
		})
	}
}

func TestAddLayerAlreadyInDocument(t *testing.T) {
	doc := stack(t)
	b, _ := doc.Layer(1)

	c := &AddLayer{Layer: b}
	if err := c.Apply(doc); !errors.Is(err, ErrLayerInDocument) {
		t.Fatalf("Apply() error = %v, want ErrLayerInDocument", err)
	}
	if got := order(doc); got != "abc" {
		t.Errorf("order = %q, want %q", got, "abc")
	}
	if err := c.Undo(doc); !errors.Is(err, ErrNotApplied) {
		t.Errorf("Undo() error = %v, want ErrNotApplied", err)
	}
}

func TestRemoveUndoLayerReadded(t *testing.T) {
	doc := stack(t)
	c := &RemoveLayer{Index: 0}
	if err := c.Apply(doc); err != nil {
		t.Fatal(err)
	}
	a := c.removed
	doc.AddLayer(a)

	if err := c.Undo(doc); !errors.Is(err, ErrLayerInDocument) {
		t.Errorf("Undo() error = %v, want ErrLayerInDocument", err)
	}
	if got := order(doc); got != "bca" {
		t.Errorf("order = %q, want %q", got, "bca")
	}
}
