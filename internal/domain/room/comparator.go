package room

var typeRank = map[Type]int{
	TypeStandard: 1,
	TypeDouble:   2,
	TypeLuxury:   3,
}

// Less orders rooms by type then number, the display order for room lists.
// Kept as an explicit comparator so the sort rule is testable in isolation.
func Less(a, b *Room) bool {
	if typeRank[a.roomType] != typeRank[b.roomType] {
		return typeRank[a.roomType] < typeRank[b.roomType]
	}
	return a.number < b.number
}
