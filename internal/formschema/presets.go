package formschema

// PresetRegions is the bulk-insert option list for select fields asking for
// a Saudi region.
const PresetRegions = "regions"

var optionPresets = map[string][]string{
	PresetRegions: {
		"الرياض",
		"مكة المكرمة",
		"المدينة المنورة",
		"القصيم",
		"المنطقة الشرقية",
		"عسير",
		"تبوك",
		"حائل",
		"الحدود الشمالية",
		"جازان",
		"نجران",
		"الباحة",
		"الجوف",
	},
}

// PresetOptions returns a copy of the named preset list, or false when no
// such preset exists.
func PresetOptions(name string) ([]string, bool) {
	opts, ok := optionPresets[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), opts...), true
}
