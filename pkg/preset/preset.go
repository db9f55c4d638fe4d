// Package preset provides the fixed-shape composite generators. Each preset
// builds one record from the atomic generators in pkg/faker, applying
// cross-field consistency rules so the output reads as one coherent entity
// rather than unrelated random fields.
package preset

import (
	mathrand "math/rand/v2"

	"github.com/getmockd/synthd/pkg/faker"
	"github.com/getmockd/synthd/pkg/record"
)

// Builder produces one composite record from the request generator.
type Builder func(rng *mathrand.Rand) *record.Object

// names lists the presets in their canonical (declaration) order.
var names = []string{
	"user", "company", "product", "address", "personal",
	"business", "location", "financial", "tech", "health",
}

var builders = map[string]Builder{
	"user":      User,
	"company":   Company,
	"product":   Product,
	"address":   Address,
	"personal":  Personal,
	"business":  Business,
	"location":  Location,
	"financial": Financial,
	"tech":      Tech,
	"health":    Health,
}

// Names returns the preset names in canonical order. The returned slice is
// shared; callers must not modify it.
func Names() []string {
	return names
}

// Has reports whether a preset name is registered.
func Has(name string) bool {
	_, ok := builders[name]
	return ok
}

// Generate builds one record for the named preset, or false if the name is
// unknown.
func Generate(name string, rng *mathrand.Rand) (*record.Object, bool) {
	b, ok := builders[name]
	if !ok {
		return nil, false
	}
	return b(rng), true
}

// User generates a user record. The email, username and fullName fields are
// derived from the same first/last pair as the sibling firstName/lastName
// fields, never re-randomized.
func User(rng *mathrand.Rand) *record.Object {
	first := faker.FirstName(rng)
	last := faker.LastName(rng)

	o := record.New()
	o.Set("id", faker.UUID(rng))
	o.Set("firstName", first)
	o.Set("lastName", last)
	o.Set("fullName", first+" "+last)
	o.Set("username", faker.UsernameFor(rng, first, last))
	o.Set("email", faker.EmailFor(rng, first, last))
	o.Set("phone", faker.Phone(rng))
	o.Set("dateOfBirth", faker.DateOfBirth(rng))
	o.Set("address", Address(rng))
	return o
}

// Company generates a company record. The website derives from the company
// name slug.
func Company(rng *mathrand.Rand) *record.Object {
	name := faker.Company(rng)

	o := record.New()
	o.Set("id", faker.UUID(rng))
	o.Set("name", name)
	o.Set("industry", faker.Industry(rng))
	o.Set("ein", faker.EIN(rng))
	o.Set("phone", faker.Phone(rng))
	o.Set("website", faker.WebsiteFor(name))
	o.Set("address", Address(rng))
	return o
}

// Product generates a product record.
func Product(rng *mathrand.Rand) *record.Object {
	o := record.New()
	o.Set("id", faker.UUID(rng))
	o.Set("name", faker.ProductName(rng))
	o.Set("sku", faker.SKU(rng))
	o.Set("barcode", faker.Barcode(rng))
	o.Set("color", faker.Color(rng))
	o.Set("material", faker.Material(rng))
	o.Set("price", faker.Price(rng))
	o.Set("currency", faker.CurrencyCode(rng))
	o.Set("inStock", rng.IntN(2) == 0)
	return o
}

// Address generates an address record with a consistent city/state pair and
// country name/code pair.
func Address(rng *mathrand.Rand) *record.Object {
	city, state := faker.CityState(rng)
	country, code := faker.CountryPair(rng)

	o := record.New()
	o.Set("buildingNumber", faker.BuildingNumber(rng))
	o.Set("street", faker.Street(rng))
	o.Set("city", city)
	o.Set("state", state)
	o.Set("zipCode", faker.ZipCode(rng))
	o.Set("country", country)
	o.Set("countryCode", code)
	return o
}

// Personal generates a personal-identity bundle.
func Personal(rng *mathrand.Rand) *record.Object {
	first := faker.FirstName(rng)
	last := faker.LastName(rng)

	o := record.New()
	o.Set("firstName", first)
	o.Set("lastName", last)
	o.Set("gender", faker.Gender(rng))
	o.Set("dateOfBirth", faker.DateOfBirth(rng))
	o.Set("ssn", faker.SSN(rng))
	o.Set("passport", faker.Passport(rng))
	o.Set("email", faker.EmailFor(rng, first, last))
	return o
}

// Business generates a work-profile bundle.
func Business(rng *mathrand.Rand) *record.Object {
	o := record.New()
	o.Set("company", faker.Company(rng))
	o.Set("jobTitle", faker.JobTitle(rng))
	o.Set("department", faker.Department(rng))
	o.Set("industry", faker.Industry(rng))
	o.Set("salary", rng.IntN(170000)+30000)
	return o
}

// Location generates a geo bundle. The route field is a variable-length
// sequence of 3–8 independently drawn coordinate pairs.
func Location(rng *mathrand.Rand) *record.Object {
	o := record.New()
	o.Set("latitude", faker.Latitude(rng))
	o.Set("longitude", faker.Longitude(rng))
	o.Set("city", faker.City(rng))
	o.Set("country", faker.Country(rng))
	o.Set("timezone", faker.Timezone(rng))

	stops := rng.IntN(6) + 3
	route := make([]any, 0, stops)
	for i := 0; i < stops; i++ {
		p := record.New()
		p.Set("lat", faker.Latitude(rng))
		p.Set("lng", faker.Longitude(rng))
		route = append(route, p)
	}
	o.Set("route", route)
	return o
}

// Financial generates a payments bundle. The crypto address is one of two
// kinds, chosen per call.
func Financial(rng *mathrand.Rand) *record.Object {
	card := record.New()
	card.Set("number", faker.CreditCard(rng))
	card.Set("expiry", faker.CreditCardExp(rng))
	card.Set("cvv", faker.CVV(rng))

	o := record.New()
	o.Set("creditCard", card)
	o.Set("iban", faker.IBAN(rng))
	o.Set("accountNumber", faker.AccountNumber(rng))
	o.Set("currency", faker.CurrencyCode(rng))
	o.Set("balance", faker.Price(rng))
	if rng.IntN(2) == 0 {
		o.Set("cryptoAddress", faker.BitcoinAddress(rng))
	} else {
		o.Set("cryptoAddress", faker.EthereumAddress(rng))
	}
	return o
}

// Tech generates an internet/device bundle.
func Tech(rng *mathrand.Rand) *record.Object {
	o := record.New()
	o.Set("uuid", faker.UUID(rng))
	o.Set("ipv4", faker.IPv4(rng))
	o.Set("ipv6", faker.IPv6(rng))
	o.Set("macAddress", faker.MACAddress(rng))
	o.Set("userAgent", faker.UserAgent(rng))
	o.Set("domain", faker.Domain(rng))
	o.Set("password", faker.Password(rng))
	o.Set("semver", faker.SemVer(rng))
	return o
}

// Health generates a health-record-like bundle.
func Health(rng *mathrand.Rand) *record.Object {
	o := record.New()
	o.Set("medicalRecordNumber", faker.MedicalRecordNumber(rng))
	o.Set("bloodType", faker.BloodType(rng))
	o.Set("heightCm", faker.HeightCm(rng))
	o.Set("weightKg", faker.WeightKg(rng))
	o.Set("heartRate", faker.HeartRate(rng))
	o.Set("temperature", faker.Temperature(rng))
	o.Set("allergy", faker.Allergy(rng))
	return o
}
