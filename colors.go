package csvchart

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

// Default is the categorical palette assigned to bar and doughnut slices
// when the theme does not bring its own.
var Default = Palette{
	"rgb(211,89,28)",
	"rgb(236,186,102)",
	"rgb(135,175,63)",
	"rgb(88,191,172)",
	"rgb(101,150,207)",
	"rgb(202,127,204)",
}

// HistogramFill is the single color given to every histogram bin.
const HistogramFill = "rgb(101,150,207)"

var (
	Blues = Palette{
		"rgb(9,58,81)",
		"rgb(32,105,138)",
		"rgb(101,150,207)",
		"rgb(182,204,230)",
		"rgb(217,233,252)",
	}
	Greens = Palette{
		"rgb(24,60,32)",
		"rgb(33,89,44)",
		"rgb(135,175,63)",
		"rgb(196,215,163)",
		"rgb(229,243,205)",
	}
	GreenBlue = Palette{
		"rgb(33,89,44)",
		"rgb(135,175,63)",
		"rgb(118,163,138)",
		"rgb(101,150,207)",
		"rgb(32,105,138)",
	}
)

// CategoricalByName resolves a named categorical palette, defaulting to
// Default.
func CategoricalByName(name string) Palette {
	switch name {
	case "Category10", "category10":
		return Category10
	case "Tableau10", "tableau10":
		return Tableau10
	default:
		return Default
	}
}

// RampByName resolves a named ramp palette, defaulting to Blues.
func RampByName(name string) Palette {
	switch name {
	case "Greens", "greens":
		return Greens
	case "Green-to-Blue", "green-to-blue":
		return GreenBlue
	default:
		return Blues
	}
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}
