// Package testutil provides a shared fixture universe for keyset tests.
package testutil

import (
	"github.com/arthur-debert/keyset/keyset"
	"github.com/arthur-debert/keyset/types"
)

// Boxed wraps a raw value the way a content-field abstraction would. The
// attribute accessor must unwrap it transparently.
type Boxed struct {
	value any
}

var _ types.Unwrapper = Boxed{}

// Box wraps a raw value.
func Box(v any) Boxed {
	return Boxed{value: v}
}

// Unwrap returns the raw underlying value.
func (b Boxed) Unwrap() any {
	return b.value
}

// UniverseData provides named access to the fixture members.
type UniverseData struct {
	BuyMilk     keyset.Record // id "t1", active, high priority, home project
	BuyBread    keyset.Record // id "t2", active, low priority, home project
	ReviewMilk  keyset.Record // id "t3", active, medium priority, work project
	ShipRelease keyset.Record // id "t4", done, high priority, work project
	PlanMilkRun keyset.Record // id "t5", active, low priority, home project

	// ByID maps every fixture member by its id.
	ByID map[string]keyset.Record
}

// NewUniverse builds the fixture collection: five task records exercising
// filtering (status), searching (three titles mention "milk"), sorting
// (priority/rank), and grouping (project).
func NewUniverse() (*keyset.Collection, *UniverseData) {
	u := &UniverseData{
		BuyMilk: keyset.Record{
			"id": "t1", "title": "Buy milk", "status": "active",
			"priority": "high", "rank": 1, "project": "home",
		},
		BuyBread: keyset.Record{
			"id": "t2", "title": "Buy bread", "status": "active",
			"priority": "low", "rank": 4, "project": "home",
		},
		ReviewMilk: keyset.Record{
			"id": "t3", "title": "Review milk order", "status": "active",
			"priority": "medium", "rank": 3, "project": "work",
		},
		ShipRelease: keyset.Record{
			"id": "t4", "title": "Ship release", "status": "done",
			"priority": "high", "rank": 2, "project": "work",
		},
		PlanMilkRun: keyset.Record{
			"id": "t5", "title": "Plan milk run", "status": "active",
			"priority": "low", "rank": 5, "project": "home",
		},
	}
	u.ByID = map[string]keyset.Record{
		"t1": u.BuyMilk,
		"t2": u.BuyBread,
		"t3": u.ReviewMilk,
		"t4": u.ShipRelease,
		"t5": u.PlanMilkRun,
	}

	c := keyset.New(u.BuyMilk, u.BuyBread, u.ReviewMilk, u.ShipRelease, u.PlanMilkRun)
	return c, u
}
