// Package faker provides the atomic field generators and the registry that
// maps field names to them. Every generator draws exclusively from the
// *rand.Rand it is handed, so a seeded request reproduces its output
// bit-for-bit. The registry is built once at init and is read-only afterward.
package faker

import (
	mathrand "math/rand/v2"
	"sort"
)

// Generator produces one value from the request generator. The concrete type
// a generator returns is stable across calls; CSV column typing and tests
// rely on that.
type Generator func(rng *mathrand.Rand) any

// registry maps field names to their generators. Keys are case-sensitive.
var registry = map[string]Generator{
	// personal identity
	"firstName":   func(r *mathrand.Rand) any { return FirstName(r) },
	"lastName":    func(r *mathrand.Rand) any { return LastName(r) },
	"fullName":    func(r *mathrand.Rand) any { return FullName(r) },
	"email":       func(r *mathrand.Rand) any { return Email(r) },
	"username":    func(r *mathrand.Rand) any { return Username(r) },
	"phone":       func(r *mathrand.Rand) any { return Phone(r) },
	"dateOfBirth": func(r *mathrand.Rand) any { return DateOfBirth(r) },
	"age":         func(r *mathrand.Rand) any { return Age(r) },
	"gender":      func(r *mathrand.Rand) any { return Gender(r) },
	"ssn":         func(r *mathrand.Rand) any { return SSN(r) },
	"passport":    func(r *mathrand.Rand) any { return Passport(r) },

	// address
	"street":         func(r *mathrand.Rand) any { return Street(r) },
	"buildingNumber": func(r *mathrand.Rand) any { return BuildingNumber(r) },
	"city":           func(r *mathrand.Rand) any { return City(r) },
	"state":          func(r *mathrand.Rand) any { return State(r) },
	"zipCode":        func(r *mathrand.Rand) any { return ZipCode(r) },
	"country":        func(r *mathrand.Rand) any { return Country(r) },
	"countryCode":    func(r *mathrand.Rand) any { return CountryCode(r) },

	// business/work
	"company":    func(r *mathrand.Rand) any { return Company(r) },
	"jobTitle":   func(r *mathrand.Rand) any { return JobTitle(r) },
	"department": func(r *mathrand.Rand) any { return Department(r) },
	"industry":   func(r *mathrand.Rand) any { return Industry(r) },
	"ein":        func(r *mathrand.Rand) any { return EIN(r) },
	"website":    func(r *mathrand.Rand) any { return Website(r) },

	// geo
	"latitude":  func(r *mathrand.Rand) any { return Latitude(r) },
	"longitude": func(r *mathrand.Rand) any { return Longitude(r) },
	"timezone":  func(r *mathrand.Rand) any { return Timezone(r) },

	// financial
	"creditCard":      func(r *mathrand.Rand) any { return CreditCard(r) },
	"creditCardExp":   func(r *mathrand.Rand) any { return CreditCardExp(r) },
	"cvv":             func(r *mathrand.Rand) any { return CVV(r) },
	"iban":            func(r *mathrand.Rand) any { return IBAN(r) },
	"accountNumber":   func(r *mathrand.Rand) any { return AccountNumber(r) },
	"currencyCode":    func(r *mathrand.Rand) any { return CurrencyCode(r) },
	"price":           func(r *mathrand.Rand) any { return Price(r) },
	"bitcoinAddress":  func(r *mathrand.Rand) any { return BitcoinAddress(r) },
	"ethereumAddress": func(r *mathrand.Rand) any { return EthereumAddress(r) },

	// product/commerce
	"productName": func(r *mathrand.Rand) any { return ProductName(r) },
	"color":       func(r *mathrand.Rand) any { return Color(r) },
	"material":    func(r *mathrand.Rand) any { return Material(r) },
	"sku":         func(r *mathrand.Rand) any { return SKU(r) },
	"barcode":     func(r *mathrand.Rand) any { return Barcode(r) },

	// internet/tech
	"uuid":          func(r *mathrand.Rand) any { return UUID(r) },
	"ipv4":          func(r *mathrand.Rand) any { return IPv4(r) },
	"ipv6":          func(r *mathrand.Rand) any { return IPv6(r) },
	"macAddress":    func(r *mathrand.Rand) any { return MACAddress(r) },
	"userAgent":     func(r *mathrand.Rand) any { return UserAgent(r) },
	"domain":        func(r *mathrand.Rand) any { return Domain(r) },
	"url":           func(r *mathrand.Rand) any { return URL(r) },
	"password":      func(r *mathrand.Rand) any { return Password(r) },
	"semver":        func(r *mathrand.Rand) any { return SemVer(r) },
	"mimeType":      func(r *mathrand.Rand) any { return MimeType(r) },
	"fileExtension": func(r *mathrand.Rand) any { return FileExtension(r) },

	// health
	"bloodType":           func(r *mathrand.Rand) any { return BloodType(r) },
	"heightCm":            func(r *mathrand.Rand) any { return HeightCm(r) },
	"weightKg":            func(r *mathrand.Rand) any { return WeightKg(r) },
	"heartRate":           func(r *mathrand.Rand) any { return HeartRate(r) },
	"temperature":         func(r *mathrand.Rand) any { return Temperature(r) },
	"medicalRecordNumber": func(r *mathrand.Rand) any { return MedicalRecordNumber(r) },
	"allergy":             func(r *mathrand.Rand) any { return Allergy(r) },
}

// sortedFields caches the sorted field list; built once at init.
var sortedFields = func() []string {
	fields := make([]string, 0, len(registry))
	for name := range registry {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}()

// Fields returns all registered field names in sorted order. The returned
// slice is shared; callers must not modify it.
func Fields() []string {
	return sortedFields
}

// Has reports whether a field name is registered.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// Generate produces a value for the named field, or false if the name is
// not registered. Unknown names are the caller's concern; the lenient
// drop-unknown policy lives in the resolver.
func Generate(name string, rng *mathrand.Rand) (any, bool) {
	gen, ok := registry[name]
	if !ok {
		return nil, false
	}
	return gen(rng), true
}
