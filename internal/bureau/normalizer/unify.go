package normalizer

import "github.com/tidwall/gjson"

const (
	// registroField is the bureau's indicator flag: "S" means the section
	// holds at least one record, anything else means none.
	registroField = "REGISTRO"
	registroYes   = "S"

	// placeholder is the bureau's "no value" sentinel, treated as absent.
	placeholder = "-"
)

// FieldMapping pairs a bureau field code with its output field name. Rename
// maps are ordered slices, not Go maps, so record construction walks fields
// in a deterministic order.
type FieldMapping struct {
	Source string
	Target string
}

// blockShape classifies the representations the upstream XML-to-JSON
// conversion uses interchangeably for a repeated-record section.
type blockShape int

const (
	// shapeNone: absent block, or an indicator object whose REGISTRO is not
	// "S" (bureau convention for "no records exist").
	shapeNone blockShape = iota
	// shapeList: the block is already the raw record list.
	shapeList
	// shapeWrapped: indicator object with REGISTRO "S" holding the records
	// (one or many) under the section's data key.
	shapeWrapped
	// shapeSingle: indicator object with REGISTRO "S" that is itself the one
	// record.
	shapeSingle
)

// classifyBlock resolves the block shape. Precedence is load-bearing: a list
// is taken verbatim before any REGISTRO inspection, and the wrapped form wins
// over the bare-single form when the data key is present. Keeping the
// classification in one place means a new bureau quirk is a one-line change.
func classifyBlock(block gjson.Result, dataKey string) blockShape {
	if !block.Exists() || block.Type == gjson.Null {
		return shapeNone
	}
	if block.IsArray() {
		return shapeList
	}
	if !block.IsObject() || block.Get(registroField).String() != registroYes {
		return shapeNone
	}
	if dataKey != "" && block.Get(dataKey).Exists() {
		return shapeWrapped
	}
	return shapeSingle
}

// unifyBlock normalizes one repeated-record section into a list of Records,
// applying the section's rename map and dropping placeholder values, non
// object elements, and records that end up empty. The result is empty, never
// nil, so sections serialize as [].
func unifyBlock(block gjson.Result, dataKey string, fields []FieldMapping) []Record {
	records := []Record{}

	var elems []gjson.Result
	switch classifyBlock(block, dataKey) {
	case shapeNone:
		return records
	case shapeList:
		elems = block.Array()
	case shapeWrapped:
		inner := block.Get(dataKey)
		if inner.IsArray() {
			elems = inner.Array()
		} else {
			// Single record collapsed by the XML conversion; promote it.
			elems = []gjson.Result{inner}
		}
	case shapeSingle:
		elems = []gjson.Result{block}
	}

	for _, elem := range elems {
		if !elem.IsObject() {
			continue
		}
		rec := Record{}
		for _, m := range fields {
			v := elem.Get(m.Source)
			if !truthy(v) || v.String() == placeholder {
				continue
			}
			// Values are copied raw: detail records keep locale-formatted
			// monetary strings; only summary aggregates parse numbers.
			rec[m.Target] = v.Value()
		}
		if len(rec) > 0 {
			records = append(records, rec)
		}
	}
	return records
}

// truthy mirrors the loose presence check the upstream contract relies on:
// null, "", 0, and false all read as absent.
func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null:
		return false
	case gjson.False:
		return false
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	default:
		return v.Exists()
	}
}
