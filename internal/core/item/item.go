// Package item contains the dynamic task item type shared by the import,
// grid, and lifecycle layers. Spreadsheet rows arrive with arbitrary column
// headers, so an item is a free-form field map with case-insensitive access
// to the semantic fields every component needs.
package item

import (
	"strconv"
	"strings"
	"time"
)

// Item is one unit of work: a mapping of spreadsheet column name to cell
// value, plus the lifecycle fields layered on after import.
type Item map[string]any

// Semantic field names. Lookups are case-insensitive and trim whitespace,
// so these are canonical spellings, not required header spellings.
const (
	FieldDescription = "Description"
	FieldVariant     = "Variant"
	FieldSampleName  = "Sample Name"
	FieldQuantity    = "Quantity"
	FieldRequestID   = "Request ID"
	FieldDueDate     = "Due Date"
	FieldPurpose     = "Purpose"
	FieldPriority    = "Priority"
)

// Lifecycle field names. These are set by the engine, never imported.
const (
	FieldLocalID           = "localId"
	FieldExecutionStatus   = "executionStatus"
	FieldNotOKReason       = "notOkFailureReason"
	FieldPreparationStatus = "preparationStatus"
	FieldIsReturned        = "isReturned"
	FieldReturnReason      = "returnReason"
	FieldReturnedBy        = "returnedBy"
	FieldIsManualEntry     = "isManualEntry"
)

// Execution status values.
const (
	StatusPending = "Pending"
	StatusDone    = "Done"
	StatusNotOK   = "NotOK"
)

// Preparation status values.
const (
	PrepAwaiting = "Awaiting Preparation"
	PrepReady    = "Ready for Testing"
	PrepPrepared = "Prepared"
)

// dateSerialEpoch is the spreadsheet day-zero (1899-12-30). Numeric cells
// under due-date headers are day offsets from this date.
var dateSerialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Field returns the trimmed string value of the named field, matching the
// field name case-insensitively and ignoring surrounding whitespace in the
// stored key. Missing fields and nil values yield "".
func (it Item) Field(name string) string {
	v, _ := it.Lookup(name)
	return strings.TrimSpace(toString(v))
}

// Lookup returns the raw value of the named field and whether it exists.
func (it Item) Lookup(name string) (any, bool) {
	want := strings.TrimSpace(name)
	if v, ok := it[want]; ok {
		return v, true
	}
	for k, v := range it {
		if strings.EqualFold(strings.TrimSpace(k), want) {
			return v, true
		}
	}
	return nil, false
}

// Set stores a value under the canonical spelling of name, replacing any
// existing key that matches case-insensitively.
func (it Item) Set(name string, value any) {
	want := strings.TrimSpace(name)
	for k := range it {
		if strings.EqualFold(strings.TrimSpace(k), want) {
			delete(it, k)
		}
	}
	it[want] = value
}

// Delete removes the named field under any spelling.
func (it Item) Delete(name string) {
	want := strings.TrimSpace(name)
	for k := range it {
		if strings.EqualFold(strings.TrimSpace(k), want) {
			delete(it, k)
		}
	}
}

// Clone returns a shallow copy of the item. Cell values are scalars, so a
// shallow copy is a full copy in practice.
func (it Item) Clone() Item {
	out := make(Item, len(it))
	for k, v := range it {
		out[k] = v
	}
	return out
}

// Bool reports whether the named field holds a true value.
func (it Item) Bool(name string) bool {
	v, ok := it.Lookup(name)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	default:
		return false
	}
}

// LocalID returns the stable identifier assigned at import time.
func (it Item) LocalID() string { return it.Field(FieldLocalID) }

// Description returns the test description field.
func (it Item) Description() string { return it.Field(FieldDescription) }

// Variant returns the test variant field.
func (it Item) Variant() string { return it.Field(FieldVariant) }

// RequestID returns the request identifier field.
func (it Item) RequestID() string { return it.Field(FieldRequestID) }

// SampleName returns the sample name field.
func (it Item) SampleName() string { return it.Field(FieldSampleName) }

// ExecutionStatus returns the execution status, defaulting to Pending when
// the field is present but empty is not a case we store; absent means the
// item was never assigned for execution.
func (it Item) ExecutionStatus() string { return it.Field(FieldExecutionStatus) }

// PreparationStatus returns the preparation status or "".
func (it Item) PreparationStatus() string { return it.Field(FieldPreparationStatus) }

// IsManual reports whether the item is an ad-hoc (non-imported) entry.
func (it Item) IsManual() bool { return it.Bool(FieldIsManualEntry) }

// DueDate resolves the due-date field to a time. Numeric cells are treated
// as spreadsheet date serials (day offset from 1899-12-30); string cells
// are parsed as dates. The second return is false when the item carries no
// parseable due date.
func (it Item) DueDate() (time.Time, bool) {
	v, ok := it.Lookup(FieldDueDate)
	if !ok || v == nil {
		return time.Time{}, false
	}
	switch d := v.(type) {
	case time.Time:
		return d, true
	case float64:
		return FromDateSerial(d), true
	case int:
		return FromDateSerial(float64(d)), true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return FromDateSerial(serial), true
		}
		for _, layout := range []string{"2006-01-02", "02-01-2006", "01/02/2006", time.RFC3339} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// FromDateSerial converts a spreadsheet day-serial number to a UTC time.
func FromDateSerial(serial float64) time.Time {
	days := int(serial)
	frac := serial - float64(days)
	return dateSerialEpoch.AddDate(0, 0, days).
		Add(time.Duration(frac * 24 * float64(time.Hour)))
}

// ToDateSerial converts a time back to its spreadsheet day-serial number.
func ToDateSerial(t time.Time) float64 {
	return t.Sub(dateSerialEpoch).Hours() / 24
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
