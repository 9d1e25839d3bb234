// Package command defines undoable document actions.
//
// A Command is applied to a document and can later be undone against the
// same document. Commands that target an existing layer remember it by id,
// so Undo still works after other commands have reordered the stack.
//
// Apply and Undo alternate: applying a command twice without an Undo in
// between fails with ErrAlreadyApplied, and Undo without a prior Apply fails
// with ErrNotApplied. This package provides the commands only; keeping an undo history
// is left to the caller.
package command

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gogpu/studio/document"
	"github.com/gogpu/studio/layer"
)

// Common errors for command operations.
var (
	// ErrIndexOutOfRange is returned when a command refers to a layer index
	// that does not exist.
	ErrIndexOutOfRange = errors.New("command: layer index out of range")

	// ErrLayerNotFound is returned when the layer a command targets is no
	// longer in the document.
	ErrLayerNotFound = errors.New("command: layer not found")

	// ErrNotApplied is returned by Undo when the command has not been applied.
	ErrNotApplied = errors.New("command: not applied")

	// ErrAlreadyApplied is returned by Apply when the command is applied and
	// has not been undone since.
	ErrAlreadyApplied = errors.New("command: already applied")

	// ErrLayerInDocument is returned when a command would add a layer the
	// document already holds.
	ErrLayerInDocument = errors.New("command: layer already in document")
)

// Command is an undoable action on a document.
type Command interface {
	// Name returns a short human-readable description, e.g. for an
	// "Undo <name>" menu entry.
	Name() string

	// Apply performs the action.
	Apply(doc *document.Document) error

	// Undo reverts the effect of the last Apply.
	Undo(doc *document.Document) error
}

// AddLayer appends a layer to the top of the stack.
type AddLayer struct {
	Layer layer.Layer

	applied bool
}

// Name implements Command.
func (c *AddLayer) Name() string {
	if layer.IsNil(c.Layer) {
		return "Add layer"
	}
	return "Add " + c.Layer.Kind().String() + " layer"
}

// Apply implements Command.
func (c *AddLayer) Apply(doc *document.Document) error {
	if c.applied {
		return ErrAlreadyApplied
	}
	if layer.IsNil(c.Layer) {
		return errors.New("command: add nil layer")
	}
	if !doc.AddLayer(c.Layer) {
		return fmt.Errorf("%w: %s", ErrLayerInDocument, c.Layer.ID())
	}
	c.applied = true
	return nil
}

// Undo implements Command.
func (c *AddLayer) Undo(doc *document.Document) error {
	if !c.applied {
		return ErrNotApplied
	}
	i := doc.IndexOf(c.Layer.ID())
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrLayerNotFound, c.Layer.ID())
	}
	doc.RemoveLayer(i)
	c.applied = false
	return nil
}

// RemoveLayer removes the layer at Index.
type RemoveLayer struct {
	Index int

	removed layer.Layer
}

// Name implements Command.
func (c *RemoveLayer) Name() string {
	return "Remove layer"
}

// Apply implements Command.
func (c *RemoveLayer) Apply(doc *document.Document) error {
	if c.removed != nil {
		return ErrAlreadyApplied
	}
	l, ok := doc.RemoveLayer(c.Index)
	if !ok {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, c.Index)
	}
	c.removed = l
	return nil
}

// Undo implements Command. The layer is reinserted at its original index,
// or on top if the stack has since shrunk below it.
func (c *RemoveLayer) Undo(doc *document.Document) error {
	if c.removed == nil {
		return ErrNotApplied
	}
	i := min(c.Index, doc.LayerCount())
	if !doc.InsertLayer(i, c.removed) {
		return fmt.Errorf("%w: %s", ErrLayerInDocument, c.removed.ID())
	}
	c.removed = nil
	return nil
}

// MoveLayer moves the layer at From to index To.
type MoveLayer struct {
	From, To int

	id      uuid.UUID
	applied bool
}

// Name implements Command.
func (c *MoveLayer) Name() string {
	return "Move layer"
}

// Apply implements Command.
func (c *MoveLayer) Apply(doc *document.Document) error {
	if c.applied {
		return ErrAlreadyApplied
	}
	l, ok := doc.Layer(c.From)
	if !ok || !doc.MoveLayer(c.From, c.To) {
		return fmt.Errorf("%w: move %d to %d", ErrIndexOutOfRange, c.From, c.To)
	}
	c.id = l.ID()
	c.applied = true
	return nil
}

// Undo implements Command.
func (c *MoveLayer) Undo(doc *document.Document) error {
	if !c.applied {
		return ErrNotApplied
	}
	i := doc.IndexOf(c.id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrLayerNotFound, c.id)
	}
	if !doc.MoveLayer(i, c.From) {
		return fmt.Errorf("%w: move %d to %d", ErrIndexOutOfRange, i, c.From)
	}
	c.applied = false
	return nil
}

// target resolves the layer at index i and remembers its id in *id.
func target(doc *document.Document, i int, id *uuid.UUID) (layer.Layer, error) {
	l, ok := doc.Layer(i)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	*id = l.ID()
	return l, nil
}

// lookup finds the layer previously resolved by target.
func lookup(doc *document.Document, id uuid.UUID) (layer.Layer, error) {
	i := doc.IndexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrLayerNotFound, id)
	}
	l, _ := doc.Layer(i)
	return l, nil
}

// SetOpacity changes the opacity of the layer at Index.
// The value is clamped like layer.Layer.SetOpacity.
type SetOpacity struct {
	Index   int
	Opacity float64

	id      uuid.UUID
	prev    float64
	applied bool
}

// Name implements Command.
func (c *SetOpacity) Name() string {
	return "Change opacity"
}

// Apply implements Command.
func (c *SetOpacity) Apply(doc *document.Document) error {
	if c.applied {
		return ErrAlreadyApplied
	}
	l, err := target(doc, c.Index, &c.id)
	if err != nil {
		return err
	}
	c.prev = l.Opacity()
	l.SetOpacity(c.Opacity)
	c.applied = true
	return nil
}

// Undo implements Command.
func (c *SetOpacity) Undo(doc *document.Document) error {
	if !c.applied {
		return ErrNotApplied
	}
	l, err := lookup(doc, c.id)
	if err != nil {
		return err
	}
	l.SetOpacity(c.prev)
	c.applied = false
	return nil
}

// SetVisible shows or hides the layer at Index.
type SetVisible struct {
	Index   int
	Visible bool

	id      uuid.UUID
	prev    bool
	applied bool
}

// Name implements Command.
func (c *SetVisible) Name() string {
	if c.Visible {
		return "Show layer"
	}
	return "Hide layer"
}

// Apply implements Command.
func (c *SetVisible) Apply(doc *document.Document) error {
	if c.applied {
		return ErrAlreadyApplied
	}
	l, err := target(doc, c.Index, &c.id)
	if err != nil {
		return err
	}
	c.prev = l.Visible()
	l.SetVisible(c.Visible)
	c.applied = true
	return nil
}

// Undo implements Command.
func (c *SetVisible) Undo(doc *document.Document) error {
	if !c.applied {
		return ErrNotApplied
	}
	l, err := lookup(doc, c.id)
	if err != nil {
		return err
	}
	l.SetVisible(c.prev)
	c.applied = false
	return nil
}

// Rename renames the layer at Index.
type Rename struct {
	Index int
	To    string

	id      uuid.UUID
	prev    string
	applied bool
}

// Name implements Command.
func (c *Rename) Name() string {
	return "Rename layer"
}

// Apply implements Command.
func (c *Rename) Apply(doc *document.Document) error {
	if c.applied {
		return ErrAlreadyApplied
	}
	l, err := target(doc, c.Index, &c.id)
	if err != nil {
		return err
	}
	c.prev = l.Name()
	l.SetName(c.To)
	c.applied = true
	return nil
}

// Undo implements Command.
func (c *Rename) Undo(doc *document.Document) error {
	if !c.applied {
		return ErrNotApplied
	}
	l, err := lookup(doc, c.id)
	if err != nil {
		return err
	}
	l.SetName(c.prev)
	c.applied = false
	return nil
}

// Interface compliance checks.
var (
	_ Command = (*AddLayer)(nil)
	_ Command = (*RemoveLayer)(nil)
	_ Command = (*MoveLayer)(nil)
	_ Command = (*SetOpacity)(nil)
	_ Command = (*SetVisible)(nil)
	_ Command = (*Rename)(nil)
)
