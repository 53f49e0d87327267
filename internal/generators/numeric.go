package generators

import (
	"math/rand"
	"strconv"

	"github.com/mmrzaf/fuzzdb/internal/domain"
)

var integerGenerators = []*definition{
	{
		name:     "age",
		category: domain.CategoryInteger,
		names: []string{
			"age", "years_old", "birth_age", "current_age",
			"kor", "eletkor", "szuletesi_kor", "jelenlegi_kor",
		},
		produce: intBetween(18, 90),
	},
	{
		name:     "salary",
		category: domain.CategoryInteger,
		names: []string{
			"salary", "wage", "income", "pay", "earnings", "compensation",
			"fizetes", "ber", "jovedelem", "kereset", "juttatas",
		},
		produce: intBetween(30000, 150000),
	},
	{
		name:     "employee_id",
		category: domain.CategoryInteger,
		names: []string{
			"employee_id", "staff_id", "worker_id", "emp_number", "personnel_id",
			"alkalmazott_id", "dolgozoi_id", "munkatars_id", "szemelyzeti_szam",
		},
		produce: intBetween(1000, 9999),
	},
	{
		name:     "quantity",
		category: domain.CategoryInteger,
		names: []string{
			"quantity", "amount", "count", "number", "total",
			"mennyiseg", "darab", "szam", "osszesen",
		},
		produce: intBetween(1, 1000),
	},
	{
		name:     "year",
		category: domain.CategoryInteger,
		names: []string{
			"year", "birth_year", "creation_year", "start_year",
			"ev", "szuletesi_ev", "letrehozas_eve", "kezdo_ev",
		},
		produce: intBetween(1950, 2024),
	},
	{
		name:     "score",
		category: domain.CategoryInteger,
		names: []string{
			"score", "points", "rating_points", "grade", "mark",
			"pontszam", "pontok", "jegy",
		},
		produce: intBetween(0, 100),
	},
	{
		name:     "views",
		category: domain.CategoryInteger,
		names: []string{
			"views", "page_views", "visits", "hits", "impressions",
			"megtekintesek", "latogatasok", "talalatok",
		},
		produce: intBetween(0, 1000000),
	},
	{
		name:     "order_id",
		category: domain.CategoryInteger,
		names: []string{
			"order_id", "order_number", "purchase_id", "transaction_id",
			"sales_id", "order_reference",
			"rendeles_id", "rendeles_szam", "vasarlas_id", "tranzakcio_id",
		},
		// Business-style IDs: fixed two-digit prefix plus six random digits.
		produce: func(rng *rand.Rand) (interface{}, error) {
			prefixes := []int64{12, 92}
			prefix := prefixes[rng.Intn(len(prefixes))]
			suffix := 100000 + rng.Int63n(900000)
			v, err := strconv.ParseInt(strconv.FormatInt(prefix, 10)+strconv.FormatInt(suffix, 10), 10, 64)
			return v, err
		},
	},
	{
		name:     "customer_id",
		category: domain.CategoryInteger,
		names: []string{
			"customer_id", "customer_identifier", "client_id", "account_id",
			"member_id",
			"ugyfel_id", "ugyfel_azonosito", "kliens_id", "felhasznalo_azonosito",
		},
		produce: func(rng *rand.Rand) (interface{}, error) {
			prefixes := []int64{18, 72}
			prefix := prefixes[rng.Intn(len(prefixes))]
			suffix := 100000 + rng.Int63n(900000)
			v, err := strconv.ParseInt(strconv.FormatInt(prefix, 10)+strconv.FormatInt(suffix, 10), 10, 64)
			return v, err
		},
	},
}

var realGenerators = []*definition{
	{
		name:     "price",
		category: domain.CategoryReal,
		names: []string{
			"price", "cost", "value", "rate", "fee",
			"ar", "koltseg", "osszeg", "ertek", "dij",
		},
		produce: realBetween(10.0, 1000.0, 2),
	},
	{
		name:     "weight",
		category: domain.CategoryReal,
		names: []string{
			"weight", "mass", "load",
			"suly", "tomeg", "teher",
		},
		produce: realBetween(0.1, 100.0, 2),
	},
	{
		name:     "temperature",
		category: domain.CategoryReal,
		names: []string{
			"temperature", "temp", "degrees", "thermal_reading",
			"homerseklet", "fok", "termikus_ertek",
		},
		produce: realBetween(-10.0, 40.0, 1),
	},
	{
		name:     "percentage",
		category: domain.CategoryReal,
		names: []string{
			"percentage", "percent", "ratio", "proportion",
			"szazalek", "arany", "hanyad",
		},
		produce: realBetween(0.0, 100.0, 2),
	},
	{
		name:     "latitude",
		category: domain.CategoryReal,
		names: []string{
			"latitude", "lat", "north_south", "parallel",
			"szelesseg", "szelessegi_fok",
		},
		produce: realBetween(-90.0, 90.0, 6),
	},
	{
		name:     "longitude",
		category: domain.CategoryReal,
		names: []string{
			"longitude", "lng", "lon", "east_west", "meridian",
			"hosszusag", "hosszusagi_fok",
		},
		produce: realBetween(-180.0, 180.0, 6),
	},
	{
		name:     "discount",
		category: domain.CategoryReal,
		names: []string{
			"discount", "reduction", "markdown", "rebate",
			"kedvezmeny", "csokkentes", "engedmeny",
		},
		produce: realBetween(0.0, 0.5, 3),
	},
	{
		name:     "tax_rate",
		category: domain.CategoryReal,
		names: []string{
			"tax_rate", "tax_percentage", "levy_rate", "duty_rate",
			"ado_kulcs", "ado_szazalek",
		},
		produce: realBetween(0.05, 0.25, 3),
	},
	{
		name:     "exchange_rate",
		category: domain.CategoryReal,
		names: []string{
			"exchange_rate", "conversion_rate", "currency_rate", "forex_rate",
			"valtasi_arfolyam", "deviza_arfolyam",
		},
		produce: realBetween(0.1, 5.0, 4),
	},
}
