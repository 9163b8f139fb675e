// Package scenarios contains the built-in demo scenarios for the playground.
package scenarios

import (
	"time"

	"github.com/zhubert/popover/internal/demo"
	"github.com/zhubert/popover/internal/keys"
)

// Tour presents every preset in turn and dismisses it again.
var Tour = &demo.Scenario{
	Name:        "tour",
	Description: "Present each preset, then dismiss it",
	Width:       100,
	Height:      30,
	Steps: []demo.Step{
		demo.Annotate("Tooltip hangs below its button"),
		demo.KeyWithDesc("1", "present the tooltip"),
		demo.Settle(),
		demo.Wait(time.Second),
		demo.Key(keys.Escape),

		demo.Annotate("Sheet slides up from the bottom"),
		demo.KeyWithDesc("2", "present the sheet"),
		demo.Settle(),
		demo.Wait(time.Second),
		demo.Key(keys.Escape),
		demo.Settle(),

		demo.Annotate("Code slides down from the top"),
		demo.KeyWithDesc("4", "present the code"),
		demo.Settle(),
		demo.Wait(time.Second),
		demo.Key(keys.Escape),
		demo.Settle(),

		demo.Annotate("Menu filters as you type"),
		demo.KeyWithDesc("5", "present the theme menu"),
		demo.Type("no"),
		demo.Wait(time.Second),
		demo.Key(keys.Escape),
		demo.Settle(),
	},
}

// Sheet drags the sheet up against resistance, then throws it off screen.
var Sheet = &demo.Scenario{
	Name:        "sheet",
	Description: "Rubber-band a sheet upward, then drag it down to dismiss",
	Width:       100,
	Height:      30,
	Steps: []demo.Step{
		demo.Key("2"),
		demo.Settle(),
		demo.Annotate("Dragging up meets resistance"),
		demo.Drag("sheet", 0, -6),
		demo.Settle(),
		demo.Annotate("Dragging down dismisses"),
		demo.Drag("sheet", 0, 12),
		demo.Settle(),
		demo.Wait(500 * time.Millisecond),
	},
}

// Corners throws the corners popover between anchors.
var Corners = &demo.Scenario{
	Name:        "corners",
	Description: "Throw a popover between the corners of the screen",
	Width:       100,
	Height:      30,
	Steps: []demo.Step{
		demo.Key("3"),
		demo.Settle(),
		demo.Annotate("Thrown toward the bottom right"),
		demo.Drag("corners", 40, 12),
		demo.Settle(),
		demo.Annotate("And back to the top right"),
		demo.Drag("corners", 0, -12),
		demo.Settle(),
		demo.Wait(500 * time.Millisecond),
	},
}

var all = []*demo.Scenario{Tour, Sheet, Corners}

// All returns the built-in scenarios.
func All() []*demo.Scenario {
	return all
}

// Get returns a copy of the scenario named name, or nil if there is none. The
// copy may be resized without touching the built-in.
func Get(name string) *demo.Scenario {
	for _, s := range all {
		if s.Name == name {
			c := *s
			c.Steps = append([]demo.Step(nil), s.Steps...)
			return &c
		}
	}
	return nil
}
