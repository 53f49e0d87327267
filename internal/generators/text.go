package generators

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/mmrzaf/fuzzdb/internal/domain"
)

// Text variants. Column-name pools carry English and Hungarian candidates so
// generated schemas look like they came from mixed-language systems.
var textGenerators = []*definition{
	{
		name:     "name",
		category: domain.CategoryText,
		names: []string{
			"name", "full_name", "person_name", "user_name", "customer_name",
			"client_name", "display_name", "screen_name",
			"nev", "teljes_nev", "szemely_nev", "felhasznalo_nev", "ugyfel_nev",
			"kliens_nev", "megjelenito_nev",
		},
		produce: fromFaker(faker.Name),
	},
	{
		name:     "first_name",
		category: domain.CategoryText,
		names: []string{
			"first_name", "given_name", "forename", "christian_name",
			"keresztnev", "elso_nev", "vezeteknev_elott",
		},
		produce: fromFaker(faker.FirstName),
	},
	{
		name:     "last_name",
		category: domain.CategoryText,
		names: []string{
			"last_name", "surname", "family_name", "lastname",
			"vezeteknev", "csaladi_nev", "utolso_nev",
		},
		produce: fromFaker(faker.LastName),
	},
	{
		name:     "company",
		category: domain.CategoryText,
		names: []string{
			"company", "corporation", "business", "enterprise", "firm",
			"organization", "workplace", "employer",
			"ceg", "vallalat", "uzlet", "vallalkozas", "szervezet",
			"munkahely", "munkaado",
		},
		produce: fromPool(
			"Northwind Trading", "Acme Logistics", "Globex Kft", "Pannonia Solutions",
			"Initech Systems", "Vertex Analytics", "Danube Software", "Stark Industries",
			"Waystar Holdings", "Hooli Europe", "Umbrella Services", "Tisza Consulting",
			"Aperture Labs", "Soylent Foods", "Magyar Telekocsi", "Balaton Media",
		),
	},
	{
		name:     "job_title",
		category: domain.CategoryText,
		names: []string{
			"job_title", "position", "role", "occupation", "profession", "title",
			"job_role", "work_position",
			"munkakor", "pozicio", "szerep", "foglalkozas", "szakma", "beosztas",
		},
		produce: fromPool(
			"Software Engineer", "Data Analyst", "Product Manager", "Accountant",
			"Sales Representative", "HR Specialist", "Operations Manager",
			"Customer Support Agent", "QA Engineer", "Marketing Coordinator",
			"Warehouse Supervisor", "Financial Controller", "DevOps Engineer",
			"Legal Counsel", "Office Administrator", "UX Designer",
		),
	},
	{
		name:     "email",
		category: domain.CategoryText,
		names: []string{
			"email", "email_address", "mail", "e_mail", "electronic_mail",
			"contact_email", "user_email",
			"email_cim", "levelezes", "kapcsolat_email",
		},
		produce: fromFaker(faker.Email),
	},
	{
		name:     "phone",
		category: domain.CategoryText,
		names: []string{
			"phone", "phone_number", "telephone", "mobile", "cell_phone",
			"contact_number", "tel_number",
			"telefon", "telefonszam", "mobil", "mobil_telefon", "tel_szam",
		},
		produce: fromFaker(faker.Phonenumber),
	},
	{
		name:     "address",
		category: domain.CategoryText,
		names: []string{
			"address", "street_address", "home_address", "location", "residence",
			"postal_address",
			"cim", "utca_cim", "lakcim", "hely", "lakhely", "postai_cim",
		},
		produce: func(rng *rand.Rand) (interface{}, error) {
			streets := []string{
				"Main Street", "Oak Avenue", "Elm Road", "Kossuth utca",
				"Petofi ter", "Andrassy ut", "High Street", "Park Lane",
				"Station Road", "Rakoczi korut", "Church Street", "Mill Lane",
			}
			return fmt.Sprintf("%d %s", 1+rng.Intn(199), streets[rng.Intn(len(streets))]), nil
		},
	},
	{
		name:     "city",
		category: domain.CategoryText,
		names: []string{
			"city", "town", "municipality", "urban_area", "settlement",
			"varos", "telepules", "onkormanyzat",
		},
		produce: fromPool(
			"Budapest", "Debrecen", "Szeged", "Pecs", "Gyor", "Miskolc",
			"London", "Paris", "Berlin", "Vienna", "Prague", "Amsterdam",
			"New York", "Chicago", "Seattle", "Tokyo", "Madrid", "Rome",
		),
	},
	{
		name:     "country",
		category: domain.CategoryText,
		names: []string{
			"country", "nation", "state", "homeland", "territory",
			"orszag", "nemzet", "allam", "haza", "terulet",
		},
		produce: fromPool(
			"Hungary", "Germany", "Austria", "France", "United Kingdom",
			"United States", "Japan", "Spain", "Italy", "Netherlands",
			"Poland", "Czech Republic", "Slovakia", "Romania", "Croatia",
		),
	},
	{
		name:     "description",
		category: domain.CategoryText,
		names: []string{
			"description", "details", "info", "information", "summary", "notes",
			"comments", "remarks",
			"leiras", "reszletek", "informacio", "megjegyzesek", "kommentek",
		},
		produce: fromFaker(faker.Sentence),
	},
	{
		name:     "website",
		category: domain.CategoryText,
		names: []string{
			"website", "url", "web_address", "homepage", "site", "web_url", "link",
			"weboldal", "url_cim", "web_cim", "fooldal", "oldal",
		},
		produce: fromFaker(faker.URL),
	},
	{
		name:     "username",
		category: domain.CategoryText,
		names: []string{
			"username", "login", "account_name", "handle",
			"bejelentkezes", "fiok_nev",
		},
		produce: fromFaker(faker.Username),
	},
	{
		name:     "license_plate",
		category: domain.CategoryText,
		names: []string{
			"license_plate", "plate_number", "registration", "car_plate",
			"rendszam", "auto_rendszam", "jarmu_rendszam", "regisztracio",
		},
		produce: func(rng *rand.Rand) (interface{}, error) {
			letters := "ABCDEFGHJKLMNPRSTVWXYZ"
			plate := make([]byte, 3)
			for i := range plate {
				plate[i] = letters[rng.Intn(len(letters))]
			}
			return fmt.Sprintf("%s-%03d", plate, rng.Intn(1000)), nil
		},
	},
	{
		name:     "color",
		category: domain.CategoryText,
		names: []string{
			"color", "colour", "hue", "shade", "tint",
			"szin", "arnyalat", "szinezes",
		},
		produce: fromPool(
			"red", "blue", "green", "yellow", "orange", "purple", "black",
			"white", "gray", "brown", "pink", "turquoise", "magenta", "olive",
		),
	},
	{
		name:     "bank_account_number",
		category: domain.CategoryText,
		names: []string{
			"bank_account_number", "account_number", "iban", "bank_account",
			"financial_account",
			"bankszamla_szam", "szamlaszam", "iban_szam", "penzugyi_szamla",
		},
		produce: fromFaker(faker.CCNumber),
	},
}
