package faker

import (
	"fmt"
	mathrand "math/rand/v2"
	"strings"
)

// =============================================================================
// Identity
// =============================================================================

// FirstName returns a random first name.
func FirstName(rng *mathrand.Rand) string { return pick(rng, firstNames) }

// LastName returns a random last name.
func LastName(rng *mathrand.Rand) string { return pick(rng, lastNames) }

// FullName returns a random "First Last" pair.
func FullName(rng *mathrand.Rand) string {
	return FirstName(rng) + " " + LastName(rng)
}

// EmailFor derives an email address from a given name pair.
func EmailFor(rng *mathrand.Rand, first, last string) string {
	return strings.ToLower(first) + "." + strings.ToLower(last) +
		digits(rng, 2) + "@" + pick(rng, emailDomains)
}

// Email returns an email address for a freshly drawn name pair.
func Email(rng *mathrand.Rand) string {
	return EmailFor(rng, FirstName(rng), LastName(rng))
}

// UsernameFor derives a username from a given name pair.
func UsernameFor(rng *mathrand.Rand, first, last string) string {
	return strings.ToLower(first) + "_" + strings.ToLower(last) + digits(rng, 2)
}

// Username returns a username for a freshly drawn name pair.
func Username(rng *mathrand.Rand) string {
	return UsernameFor(rng, FirstName(rng), LastName(rng))
}

// Phone returns a US-style phone number.
func Phone(rng *mathrand.Rand) string {
	return fmt.Sprintf("+1-%03d-%03d-%04d",
		rng.IntN(900)+100, rng.IntN(900)+100, rng.IntN(10000))
}

// DateOfBirth returns an ISO date between 1950-01-01 and 2005-12-28.
func DateOfBirth(rng *mathrand.Rand) string {
	year := 1950 + rng.IntN(56)
	month := rng.IntN(12) + 1
	day := rng.IntN(28) + 1
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Age returns an adult age between 18 and 90.
func Age(rng *mathrand.Rand) int { return rng.IntN(73) + 18 }

// Gender returns a gender label.
func Gender(rng *mathrand.Rand) string { return pick(rng, genders) }

// SSN returns a random SSN in ###-##-#### format.
func SSN(rng *mathrand.Rand) string {
	return fmt.Sprintf("%03d-%02d-%04d",
		rng.IntN(899)+100, rng.IntN(99)+1, rng.IntN(9999)+1)
}

// Passport returns a passport number (2 uppercase letters + 7 digits).
func Passport(rng *mathrand.Rand) string {
	return letters(rng, 2) + digits(rng, 7)
}

// =============================================================================
// Address
// =============================================================================

// Street returns a street name.
func Street(rng *mathrand.Rand) string { return pick(rng, streets) }

// BuildingNumber returns a street number between 1 and 9999.
func BuildingNumber(rng *mathrand.Rand) int { return rng.IntN(9999) + 1 }

// City returns a city name.
func City(rng *mathrand.Rand) string { return pick(rng, cities) }

// State returns a two-letter state code.
func State(rng *mathrand.Rand) string { return pick(rng, states) }

// CityState draws a consistent city/state pair.
func CityState(rng *mathrand.Rand) (string, string) {
	i := rng.IntN(len(cities))
	return cities[i], states[i]
}

// ZipCode returns a five-digit zip code.
func ZipCode(rng *mathrand.Rand) string { return digits(rng, 5) }

// Country returns a country name.
func Country(rng *mathrand.Rand) string { return pick(rng, countryRows).name }

// CountryCode returns an ISO 3166-1 alpha-2 country code.
func CountryCode(rng *mathrand.Rand) string { return pick(rng, countryRows).code }

// CountryPair draws a consistent country name/code pair.
func CountryPair(rng *mathrand.Rand) (string, string) {
	row := pick(rng, countryRows)
	return row.name, row.code
}

// Timezone returns an IANA timezone name.
func Timezone(rng *mathrand.Rand) string { return pick(rng, timezones) }

// =============================================================================
// Business
// =============================================================================

// Company returns a company name with a legal suffix.
func Company(rng *mathrand.Rand) string {
	return pick(rng, companyNames) + " " + pick(rng, companySuffixes)
}

// WebsiteFor derives a website URL from a company name.
func WebsiteFor(name string) string {
	slug := strings.ToLower(strings.Fields(name)[0])
	return "https://www." + slug + ".com"
}

// Website returns a website URL for a freshly drawn company.
func Website(rng *mathrand.Rand) string { return WebsiteFor(Company(rng)) }

// JobTitle returns a "Level Field Role" job title.
func JobTitle(rng *mathrand.Rand) string {
	return pick(rng, jobLevels) + " " + pick(rng, jobFields) + " " + pick(rng, jobRoles)
}

// Department returns a department name.
func Department(rng *mathrand.Rand) string { return pick(rng, departments) }

// Industry returns an industry name.
func Industry(rng *mathrand.Rand) string { return pick(rng, industries) }

// EIN returns a US employer identification number in ##-####### format.
func EIN(rng *mathrand.Rand) string {
	return digits(rng, 2) + "-" + digits(rng, 7)
}

// =============================================================================
// Geo
// =============================================================================

// Latitude returns a latitude in [-90, 90) rounded to 6 decimal places.
func Latitude(rng *mathrand.Rand) float64 {
	return round6(rng.Float64()*180 - 90)
}

// Longitude returns a longitude in [-180, 180) rounded to 6 decimal places.
func Longitude(rng *mathrand.Rand) float64 {
	return round6(rng.Float64()*360 - 180)
}

func round6(f float64) float64 {
	return float64(int64(f*1e6)) / 1e6
}

// =============================================================================
// Finance
// =============================================================================

// CreditCard returns a Luhn-valid 16-digit card number with a Visa-like prefix.
func CreditCard(rng *mathrand.Rand) string {
	card := make([]int, 16)
	card[0] = 4
	for i := 1; i < 15; i++ {
		card[i] = rng.IntN(10)
	}

	// Luhn check digit: double digits at even indices (odd positions from
	// the right in a 16-digit number).
	sum := 0
	for i := 0; i < 15; i++ {
		d := card[i]
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	card[15] = (10 - sum%10) % 10

	var sb strings.Builder
	for _, d := range card {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}

// CreditCardExp returns an expiry in MM/YY format within the next five years.
func CreditCardExp(rng *mathrand.Rand) string {
	return fmt.Sprintf("%02d/%02d", rng.IntN(12)+1, 26+rng.IntN(5))
}

// CVV returns a three-digit card verification value.
func CVV(rng *mathrand.Rand) string { return digits(rng, 3) }

// IBAN returns a simplified IBAN with realistic country structure.
func IBAN(rng *mathrand.Rand) string {
	row := pick(rng, ibanRows)
	var sb strings.Builder
	sb.WriteString(row.country)
	sb.WriteString(fmt.Sprintf("%02d", rng.IntN(90)+10))
	sb.WriteString(row.bankPrefix)
	sb.WriteString(digits(rng, row.length-len(row.country)-2-len(row.bankPrefix)))
	return sb.String()
}

// AccountNumber returns a ten-digit account number.
func AccountNumber(rng *mathrand.Rand) string { return digits(rng, 10) }

// CurrencyCode returns an ISO 4217 currency code.
func CurrencyCode(rng *mathrand.Rand) string { return pick(rng, currencyCodes) }

// Price returns a price between 1.00 and 999.99 with two decimal places.
func Price(rng *mathrand.Rand) float64 {
	cents := rng.IntN(99900) + 100
	return float64(cents) / 100
}

// BitcoinAddress returns a P2PKH-style base58 address.
func BitcoinAddress(rng *mathrand.Rand) string {
	n := rng.IntN(9) + 26
	var sb strings.Builder
	sb.WriteByte('1')
	for i := 0; i < n; i++ {
		sb.WriteByte(base58Chars[rng.IntN(len(base58Chars))])
	}
	return sb.String()
}

// EthereumAddress returns a 0x-prefixed 40-hex-digit address.
func EthereumAddress(rng *mathrand.Rand) string {
	const hexChars = "0123456789abcdef"
	b := make([]byte, 40)
	for i := range b {
		b[i] = hexChars[rng.IntN(16)]
	}
	return "0x" + string(b)
}

// =============================================================================
// Commerce
// =============================================================================

// ProductName returns an "Adjective Material Noun" product name.
func ProductName(rng *mathrand.Rand) string {
	return pick(rng, productAdjectives) + " " +
		pick(rng, productMaterials) + " " + pick(rng, productNouns)
}

// Color returns a color name.
func Color(rng *mathrand.Rand) string { return pick(rng, colors) }

// Material returns a material name.
func Material(rng *mathrand.Rand) string { return pick(rng, productMaterials) }

// SKU returns a stock keeping unit like "ABC-12345".
func SKU(rng *mathrand.Rand) string {
	return letters(rng, 3) + "-" + digits(rng, 5)
}

// Barcode returns a 13-digit EAN-style barcode.
func Barcode(rng *mathrand.Rand) string { return digits(rng, 13) }

// =============================================================================
// Internet
// =============================================================================

// UUID returns a v4 UUID drawn from the request generator, so seeded
// requests reproduce it.
func UUID(rng *mathrand.Rand) string {
	var b [16]byte
	for i := range b {
		b[i] = byte(rng.IntN(256))
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

// IPv4 returns a random IPv4 address.
func IPv4(rng *mathrand.Rand) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		rng.IntN(256), rng.IntN(256), rng.IntN(256), rng.IntN(256))
}

// IPv6 returns a random IPv6 address in full expanded notation.
func IPv6(rng *mathrand.Rand) string {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", rng.IntN(65536))
	}
	return strings.Join(groups, ":")
}

// MACAddress returns a random MAC address in uppercase hex notation.
func MACAddress(rng *mathrand.Rand) string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		rng.IntN(256), rng.IntN(256), rng.IntN(256),
		rng.IntN(256), rng.IntN(256), rng.IntN(256))
}

// UserAgent returns a realistic browser user agent string.
func UserAgent(rng *mathrand.Rand) string { return pick(rng, userAgents) }

// Domain returns a domain name.
func Domain(rng *mathrand.Rand) string {
	return pick(rng, domainWords) + pick(rng, domainWords) + "." + pick(rng, tlds)
}

// URL returns an https URL on a random domain.
func URL(rng *mathrand.Rand) string {
	return "https://" + Domain(rng) + "/" + pick(rng, domainWords)
}

// Password returns a 12-character password without ambiguous characters.
func Password(rng *mathrand.Rand) string {
	b := make([]byte, 12)
	for i := range b {
		b[i] = passwordChars[rng.IntN(len(passwordChars))]
	}
	return string(b)
}

// SemVer returns a semantic version like "3.12.7".
func SemVer(rng *mathrand.Rand) string {
	return fmt.Sprintf("%d.%d.%d", rng.IntN(10), rng.IntN(20), rng.IntN(20))
}

// MimeType returns a common MIME type.
func MimeType(rng *mathrand.Rand) string { return pick(rng, mimeTypes) }

// FileExtension returns a common file extension without the leading dot.
func FileExtension(rng *mathrand.Rand) string { return pick(rng, fileExtensions) }

// =============================================================================
// Health
// =============================================================================

// BloodType returns an ABO/Rh blood type.
func BloodType(rng *mathrand.Rand) string { return pick(rng, bloodTypes) }

// HeightCm returns a height between 140 and 209 cm.
func HeightCm(rng *mathrand.Rand) int { return rng.IntN(70) + 140 }

// WeightKg returns a weight between 45.0 and 124.9 kg.
func WeightKg(rng *mathrand.Rand) float64 {
	return float64(rng.IntN(800)+450) / 10
}

// HeartRate returns a resting heart rate between 50 and 109 bpm.
func HeartRate(rng *mathrand.Rand) int { return rng.IntN(60) + 50 }

// Temperature returns a body temperature between 36.0 and 38.9 °C.
func Temperature(rng *mathrand.Rand) float64 {
	return float64(rng.IntN(30)+360) / 10
}

// MedicalRecordNumber returns an MRN like "MRN-1234567".
func MedicalRecordNumber(rng *mathrand.Rand) string {
	return "MRN-" + digits(rng, 7)
}

// Allergy returns a known allergy label.
func Allergy(rng *mathrand.Rand) string { return pick(rng, allergies) }
