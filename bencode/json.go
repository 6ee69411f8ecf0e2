package bencode

import "encoding/json"

// MarshalJSON renders v for display: byte strings become JSON strings,
// integers numbers, lists arrays and dictionaries objects.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.jsonValue())
}

func (v Value) jsonValue() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindList:
		items := make([]interface{}, len(v.l))
		for i, item := range v.l {
			items[i] = item.jsonValue()
		}
		return items
	case KindDict:
		// encoding/json sorts map keys, matching the bencode order.
		obj := make(map[string]interface{}, len(v.d))
		for _, e := range v.d {
			obj[e.Key] = e.Value.jsonValue()
		}
		return obj
	default:
		return string(v.b)
	}
}
