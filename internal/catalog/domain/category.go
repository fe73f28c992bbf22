package domain

// Category is one entry of the fixed category table.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Group string `json:"group"`
}

// Category groups shown as section headers in the storefront filter.
const (
	GroupSpecialDates = "Fechas Especiales"
	GroupFeatured     = "Productos Destacados"
	GroupOther        = "Otros"
)

// Categories is the full category table in display order.
// Changing it is a code deployment, not a data migration.
var Categories = []Category{
	{Key: "14_febrero", Label: "14 de Febrero", Group: GroupSpecialDates},
	{Key: "flores_amarillas", Label: "Flores Amarillas", Group: GroupSpecialDates},
	{Key: "navidad", Label: "Navidad", Group: GroupSpecialDates},
	{Key: "nacimientos", Label: "Nacimientos", Group: GroupSpecialDates},
	{Key: "peluches", Label: "Peluches", Group: GroupFeatured},
	{Key: "flores", Label: "Flores", Group: GroupFeatured},
	{Key: "ramos", Label: "Ramos", Group: GroupFeatured},
	{Key: "globos", Label: "Globos", Group: GroupFeatured},
	{Key: "joyeria", Label: "Joyeria", Group: GroupOther},
	{Key: "juguetes", Label: "Juguetes", Group: GroupOther},
	{Key: "dulces", Label: "Dulces", Group: GroupOther},
	{Key: "arreglos", Label: "Arreglos", Group: GroupOther},
	{Key: "cumpleaños", Label: "Cumpleaños", Group: GroupSpecialDates},
	{Key: "bodas", Label: "Bodas y eventos", Group: GroupSpecialDates},
	{Key: "cestas", Label: "Cestas regalo", Group: GroupOther},
	{Key: "complementos", Label: "Complementos", Group: GroupOther},
	{Key: "graduaciones", Label: "Graduaciones", Group: GroupSpecialDates},
}

var categoryIndex = func() map[string]Category {
	idx := make(map[string]Category, len(Categories))
	for _, c := range Categories {
		idx[c.Key] = c
	}
	return idx
}()

// CategoryByKey looks up a category by its key.
func CategoryByKey(key string) (Category, bool) {
	c, ok := categoryIndex[key]
	return c, ok
}

// ValidCategory reports whether key exists in the category table.
func ValidCategory(key string) bool {
	_, ok := categoryIndex[key]
	return ok
}

// Season is the month-dependent category preference used by featured
// ranking, plus the highlight color shown for the top category.
type Season struct {
	Priority        []string `json:"priority"`
	BackgroundColor string   `json:"background_color"`
}

var (
	seasonValentine = Season{
		Priority:        []string{"14_febrero", "ramos", "arreglos", "peluches", "joyeria", "flores", "cumpleaños", "complementos"},
		BackgroundColor: "#FFB6C1",
	}
	seasonSpring = Season{
		Priority:        []string{"flores_amarillas", "ramos", "arreglos", "flores", "joyeria", "peluches", "cumpleaños", "complementos"},
		BackgroundColor: "#FFFFE0",
	}
	seasonSummer = Season{
		Priority:        []string{"cumpleaños", "graduaciones", "flores", "ramos", "peluches", "globos", "juguetes", "dulces", "joyeria", "cestas", "complementos"},
		BackgroundColor: "#ADD8E6",
	}
	seasonAutumn = Season{
		Priority:        []string{"flores_amarillas", "cumpleaños", "dulces", "juguetes", "arreglos", "cestas", "complementos"},
		BackgroundColor: "#FFE4B5",
	}
	seasonWinter = Season{
		Priority:        []string{"navidad", "nacimientos", "cestas", "joyeria", "peluches", "dulces", "flores", "complementos"},
		BackgroundColor: "#F08080",
	}
)

// seasonByMonth is an explicit month lookup so every month 1 through 12
// has a defined season.
var seasonByMonth = map[int]Season{
	1:  seasonValentine,
	2:  seasonValentine,
	3:  seasonSpring,
	4:  seasonSpring,
	5:  seasonSpring,
	6:  seasonSummer,
	7:  seasonSummer,
	8:  seasonSummer,
	9:  seasonAutumn,
	10: seasonAutumn,
	11: seasonAutumn,
	12: seasonWinter,
}

// SeasonFor returns the season for the given month (1 to 12).
// Out-of-range months fall back to the winter season.
func SeasonFor(month int) Season {
	if s, ok := seasonByMonth[month]; ok {
		return s
	}
	return seasonWinter
}
