package dictionary

const (
	// WeightedDictVersion dictionaries carry a cost for every word.
	WeightedDictVersion = 0x64627277e5a10b01
	// UnweightedDictVersion dictionaries only record membership.
	UnweightedDictVersion = 0x64627275e5a10b02
)

func IsValidVersion(version uint64) bool {
	return version == WeightedDictVersion || version == UnweightedDictVersion
}

func IsWeighted(version uint64) bool {
	return version == WeightedDictVersion
}
