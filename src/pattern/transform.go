package pattern

import (
	"github.com/pkg/errors"

	"sparselife/src/life"
)

//Axis selects the mirror line for Mirror
type Axis int

const (
	//AxisX mirrors across the horizontal line through the center (flips Y)
	AxisX Axis = iota
	//AxisY mirrors across the vertical line through the center (flips X)
	AxisY
)

//Origin is the default reference location for transforms
var Origin = life.Location{}

//Translate shifts every cell's location by the given offset
func Translate(cells []life.Cell, offset life.Location) []life.Cell {
	out := make([]life.Cell, len(cells))
	for i, c := range cells {
		out[i] = life.Cell{
			Loc:   life.Location{X: c.Loc.X + offset.X, Y: c.Loc.Y + offset.Y},
			Alive: c.Alive,
		}
	}
	return out
}

//Mirror reflects the cells across the given axis through center
//exactly the coordinate orthogonal to the axis is negated
func Mirror(cells []life.Cell, axis Axis, center life.Location) []life.Cell {
	out := make([]life.Cell, len(cells))
	for i, c := range cells {
		loc := c.Loc
		switch axis {
		case AxisX:
			loc.Y = center.Y - (loc.Y - center.Y)
		case AxisY:
			loc.X = center.X - (loc.X - center.X)
		}
		out[i] = life.Cell{Loc: loc, Alive: c.Alive}
	}
	return out
}

//Rotate rotates the cells about center by the given amount of degrees
//positive amounts rotate clockwise in screen coordinates (y grows down)
//only ±90, ±180 and ±270 are recognized; anything else is an error
func Rotate(cells []life.Cell, degrees int, center life.Location) ([]life.Cell, error) {
	out := make([]life.Cell, len(cells))
	for i, c := range cells {
		dx := c.Loc.X - center.X
		dy := c.Loc.Y - center.Y
		switch degrees {
		case 90, -270:
			dx, dy = -dy, dx
		case 180, -180:
			dx, dy = -dx, -dy
		case 270, -90:
			dx, dy = dy, -dx
		default:
			return nil, errors.Errorf("[Rotate] unsupported rotation: %d degrees (want ±90, ±180 or ±270)", degrees)
		}
		out[i] = life.Cell{
			Loc:   life.Location{X: center.X + dx, Y: center.Y + dy},
			Alive: c.Alive,
		}
	}
	return out, nil
}

//Compose unions many cell lists into one, de-duplicated by location
//on a collision the entry appearing later in the input order wins,
//keeping the slot of the first appearance so output order stays stable
func Compose(groups ...[]life.Cell) []life.Cell {
	var out []life.Cell
	slot := make(map[life.Location]int)
	for _, g := range groups {
		for _, c := range g {
			if i, ok := slot[c.Loc]; ok {
				out[i] = c
				continue
			}
			slot[c.Loc] = len(out)
			out = append(out, c)
		}
	}
	return out
}
