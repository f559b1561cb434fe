package unit

// Seed is the board used when nothing has been stored yet.
func Seed() []*Unit {
	return []*Unit{
		{ID: 1, Floor: 1, Section: 1, Number: 101, Area: 54, Status: Free, RoomCount: 2},
		{ID: 2, Floor: 1, Section: 2, Number: 102, Area: 68, Status: Sold, RoomCount: 3},
		{ID: 3, Floor: 2, Section: 1, Number: 201, Area: 52, Status: Free, RoomCount: 1},
		{ID: 4, Floor: 2, Section: 2, Number: 202, Area: 65, Status: Free, RoomCount: 2},
		{ID: 5, Floor: 3, Section: 1, Number: 301, Area: 50, Status: Free, RoomCount: 1},
		{ID: 6, Floor: 3, Section: 2, Number: 302, Area: 70, Status: Free, RoomCount: 3},
	}
}

// Generated numbers keep one digit each for floor and stoak, so they stay
// unique only up to these bounds.
const (
	MaxGeneratedFloors = 9
	MaxGeneratedStoaks = 9
)

// Generate builds a sections x floors x stoaks sample board. Sections, floors
// and stoaks are numbered from 1. Every fourth unit is sold. Dimensions below
// one or above the generated bounds give nil.
func Generate(sections, floors, stoaks int) []*Unit {
	if sections < 1 || floors < 1 || stoaks < 1 {
		return nil
	}
	if floors > MaxGeneratedFloors || stoaks > MaxGeneratedStoaks {
		return nil
	}
	units := make([]*Unit, 0, sections*floors*stoaks)
	id := 0
	for s := 1; s <= sections; s++ {
		for f := 1; f <= floors; f++ {
			for t := 1; t <= stoaks; t++ {
				id++
				status := Free
				if id%4 == 0 {
					status = Sold
				}
				units = append(units, &Unit{
					ID:        id,
					Floor:     f,
					Section:   s,
					Stoak:     t,
					Number:    Number(100 + s*100 + f*10 + t),
					Area:      float64(38 + (t-1)*5),
					RoomCount: 1 + (t-1)%3,
					Status:    status,
				})
			}
		}
	}
	return units
}
