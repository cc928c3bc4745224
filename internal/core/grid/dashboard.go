package grid

import (
	"sort"

	"github.com/example/labops/internal/core/item"
)

// AssignedView is the dashboard's view of one assignment container
// (execution or preparation) bound to a person.
type AssignedView struct {
	PersonID   string
	PersonName string
	Role       string // "tester" or "assistant"
	Items      []item.Item
}

// DescCounts are per-description item status counts for one person.
type DescCounts struct {
	Description string
	Done        int
	Pending     int
	NotOK       int
	Returned    int
	Prepared    int
}

// PersonSummary is the dashboard line for one person.
type PersonSummary struct {
	PersonID   string
	PersonName string
	Role       string
	Counts     []DescCounts
}

// ByPerson groups item outcomes by assigned person, broken out by task
// description text. The item status fields are the single source of truth
// here; column resolution plays no part. Pure over its inputs, so calling
// it twice over the same views yields identical summaries.
func ByPerson(views []AssignedView) []PersonSummary {
	type personAcc struct {
		summary   PersonSummary
		descOrder []string
		byDesc    map[string]*DescCounts
	}

	var order []string
	byPerson := make(map[string]*personAcc)

	for _, v := range views {
		acc, ok := byPerson[v.PersonID]
		if !ok {
			acc = &personAcc{
				summary: PersonSummary{PersonID: v.PersonID, PersonName: v.PersonName, Role: v.Role},
				byDesc:  make(map[string]*DescCounts),
			}
			byPerson[v.PersonID] = acc
			order = append(order, v.PersonID)
		}

		for _, it := range v.Items {
			desc := it.Description()
			counts, ok := acc.byDesc[desc]
			if !ok {
				counts = &DescCounts{Description: desc}
				acc.byDesc[desc] = counts
				acc.descOrder = append(acc.descOrder, desc)
			}

			if it.Bool(item.FieldIsReturned) {
				counts.Returned++
				continue
			}
			switch v.Role {
			case "assistant":
				if it.PreparationStatus() == item.PrepPrepared {
					counts.Prepared++
				} else {
					counts.Pending++
				}
			default:
				switch it.ExecutionStatus() {
				case item.StatusDone:
					counts.Done++
				case item.StatusNotOK:
					counts.NotOK++
				default:
					counts.Pending++
				}
			}
		}
	}

	out := make([]PersonSummary, 0, len(order))
	for _, id := range order {
		acc := byPerson[id]
		sort.Strings(acc.descOrder)
		for _, desc := range acc.descOrder {
			acc.summary.Counts = append(acc.summary.Counts, *acc.byDesc[desc])
		}
		out = append(out, acc.summary)
	}
	return out
}
