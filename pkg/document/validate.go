package document

import (
	"strconv"

	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/layout"
)

// MaxSize bounds every size in a document, in pixels.
const MaxSize = 1 << 16

var (
	modes      = []string{"vstack", "hstack", "place"}
	alignsH    = []string{"left", "center", "right", "fill", "expand"}
	alignsV    = []string{"top", "center", "bottom", "fill", "expand"}
	sizeModes  = []string{"auto", "fixed"}
	placeKinds = []string{"pixel", "relative", "offset"}
)

// Validate checks sizes, enumerations, id uniqueness and place references.
// Parse, ReadFile and Build call it.
func (d *Document) Validate() error {
	if err := errors.ValidateSize("width", d.Width, MaxSize); err != nil {
		return err
	}
	if err := errors.ValidateSize("height", d.Height, MaxSize); err != nil {
		return err
	}
	if d.Scale < 0 || d.Scale > 8 {
		return errors.New(errors.ErrCodeInvalidDocument, "scale must be within 0..8 (got %g)", d.Scale)
	}
	seen := map[string]string{"root": "root"}
	return validateGroup("root", &d.Root, seen)
}

func validateGroup(path string, g *Group, seen map[string]string) error {
	if g.Mode == "" && len(g.Children) > 0 {
		return errors.New(errors.ErrCodeInvalidDocument, "%s: mode is required", path)
	}
	if err := errors.ValidateEnum(path+".mode", g.Mode, modes...); err != nil {
		return err
	}
	mode, _ := layout.ParseMode(g.Mode)

	siblings := make(map[string]bool, len(g.Children))
	for i := range g.Children {
		siblings[g.Children[i].ID] = true
	}
	for i := range g.Children {
		e := &g.Children[i]
		p := path + ".children[" + strconv.Itoa(i) + "]"
		if err := errors.ValidateID(e.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", p)
		}
		if first, dup := seen[e.ID]; dup {
			return errors.New(errors.ErrCodeDuplicateChild, "%s: id %q already used by %s", p, e.ID, first)
		}
		seen[e.ID] = p
		if err := validateElement(p, mode, e, siblings); err != nil {
			return err
		}
		if e.Container != nil {
			if err := validateGroup(p+".container", e.Container, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateElement(path string, mode layout.Mode, e *Element, siblings map[string]bool) error {
	for _, v := range []struct {
		name string
		val  int
	}{{"pad", e.Pad}, {"filler", e.Filler}, {"split", e.Split}} {
		if err := errors.ValidateSize(path+"."+v.name, v.val, MaxSize); err != nil {
			return err
		}
	}
	if (e.W == Measured || e.H == Measured) && e.Text == "" && e.Container == nil {
		return errors.New(errors.ErrCodeInvalidDocument, "%s: measured size needs text", path)
	}

	switch mode {
	case layout.ModeVStack, layout.ModeHStack:
		aligns := alignsH
		if mode == layout.ModeHStack {
			aligns = alignsV
		}
		if err := errors.ValidateEnum(path+".align", e.Align, aligns...); err != nil {
			return err
		}
		if err := errors.ValidateEnum(path+".size", e.Size, sizeModes...); err != nil {
			return err
		}
		for _, v := range []struct {
			name string
			val  float64
		}{{"w", e.W}, {"h", e.H}} {
			if v.val < Measured || v.val > MaxSize {
				return errors.New(errors.ErrCodeInvalidInput, "%s.%s out of range (got %g)", path, v.name, v.val)
			}
		}
		if e.Pos != "" || e.Span != "" || e.PosRef != "" || e.SpanRef != "" {
			return errors.New(errors.ErrCodeInvalidMode, "%s: pos/span keys need a place group", path)
		}
	case layout.ModePlace:
		if err := errors.ValidateEnum(path+".pos", e.Pos, placeKinds...); err != nil {
			return err
		}
		if err := errors.ValidateEnum(path+".span", e.Span, placeKinds...); err != nil {
			return err
		}
		if err := validateRef(path+".pos_ref", e.Pos, e.PosRef, e.ID, siblings); err != nil {
			return err
		}
		if err := validateRef(path+".span_ref", e.Span, e.SpanRef, e.ID, siblings); err != nil {
			return err
		}
		if e.Align != "" || e.Size != "" || e.AutoExpand {
			return errors.New(errors.ErrCodeInvalidMode, "%s: align/size/auto_expand keys need a stack group", path)
		}
	}
	return nil
}

func validateRef(path, kind, ref, self string, siblings map[string]bool) error {
	k, _ := layout.ParsePlaceKind(kind)
	switch {
	case k != layout.PlaceOffset && ref != "":
		return errors.New(errors.ErrCodeInvalidDocument, "%s is only used with offset", path)
	case k != layout.PlaceOffset:
		return nil
	case ref == "":
		return errors.New(errors.ErrCodeInvalidDocument, "%s is required for offset", path)
	case ref == self:
		return errors.New(errors.ErrCodeInvalidDocument, "%s refers to the element itself", path)
	case !siblings[ref]:
		return errors.New(errors.ErrCodeUnknownChild, "%s: no sibling %q", path, ref)
	}
	return nil
}
