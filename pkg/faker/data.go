package faker

// =============================================================================
// Data Pools — Identity
// =============================================================================

var firstNames = []string{
	"John", "Jane", "Bob", "Alice", "Charlie", "Diana", "Edward", "Fiona",
	"George", "Hannah", "Ivan", "Julia", "Kevin", "Laura", "Miguel", "Nina",
	"Oscar", "Priya", "Quentin", "Rosa", "Sam", "Tessa", "Umar", "Vera",
}

var lastNames = []string{
	"Smith", "Doe", "Johnson", "Williams", "Brown", "Davis", "Miller", "Wilson",
	"Moore", "Taylor", "Anderson", "Thomas", "Jackson", "White", "Harris",
	"Martin", "Thompson", "Garcia", "Martinez", "Robinson", "Clark", "Lewis",
}

var genders = []string{"female", "male", "nonbinary"}

// jobLevels, jobFields and jobRoles combine into job titles.
var jobLevels = []string{"Senior", "Junior", "Lead", "Principal", "Staff"}

var jobFields = []string{
	"Software", "Data", "Product", "Marketing", "Sales",
	"Operations", "Security", "Infrastructure", "Quality", "Research",
}

var jobRoles = []string{
	"Engineer", "Analyst", "Manager", "Designer", "Architect",
	"Consultant", "Developer", "Specialist", "Coordinator", "Strategist",
}

var departments = []string{
	"Engineering", "Marketing", "Sales", "Support", "Finance",
	"Human Resources", "Legal", "Operations", "Research", "Design",
}

var industries = []string{
	"Technology", "Healthcare", "Finance", "Retail", "Manufacturing",
	"Education", "Energy", "Transportation", "Hospitality", "Agriculture",
}

// =============================================================================
// Data Pools — Address
// =============================================================================

var streets = []string{
	"Main St", "Oak Ave", "Elm St", "Park Blvd", "Cedar Ln",
	"Maple Dr", "Pine Rd", "Lake Way", "Hill Ct", "River Ter",
}

// cities, states and cityZipPrefixes share indices so a generated address
// stays internally consistent.
var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Seattle", "Denver", "Boston", "Atlanta", "Portland",
}

var states = []string{
	"NY", "CA", "IL", "TX", "AZ",
	"WA", "CO", "MA", "GA", "OR",
}

var countryRows = []struct {
	name string
	code string
}{
	{"United States", "US"},
	{"United Kingdom", "GB"},
	{"Germany", "DE"},
	{"France", "FR"},
	{"Spain", "ES"},
	{"Italy", "IT"},
	{"Netherlands", "NL"},
	{"Canada", "CA"},
	{"Australia", "AU"},
	{"Japan", "JP"},
	{"Brazil", "BR"},
	{"India", "IN"},
}

var timezones = []string{
	"America/New_York", "America/Chicago", "America/Denver",
	"America/Los_Angeles", "Europe/London", "Europe/Berlin",
	"Europe/Paris", "Asia/Tokyo", "Asia/Kolkata", "Australia/Sydney",
}

// =============================================================================
// Data Pools — Business
// =============================================================================

var companyNames = []string{
	"Acme", "Globex", "Initech", "Umbrella", "Stark",
	"Wayne", "Cyberdyne", "Tyrell", "Hooli", "Vandelay",
	"Wonka", "Soylent", "Oscorp", "Dunder", "Aperture",
}

var companySuffixes = []string{
	"Corp", "Inc", "LLC", "Group", "Industries",
	"Labs", "Holdings", "Systems", "Partners", "Ventures",
}

// =============================================================================
// Data Pools — Finance
// =============================================================================

var currencyCodes = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY",
	"SEK", "NZD", "MXN", "SGD", "HKD", "NOK", "KRW", "TRY",
	"INR", "RUB", "BRL", "ZAR",
}

// ibanRow defines country code, total IBAN length and a sample bank code.
type ibanRow struct {
	country    string
	length     int
	bankPrefix string
}

var ibanRows = []ibanRow{
	{"GB", 22, "WEST"},
	{"DE", 22, "DEUT"},
	{"FR", 27, "BNPA"},
	{"ES", 24, "BBVA"},
	{"IT", 27, "UCRI"},
	{"NL", 18, "ABNA"},
}

// base58Chars is the bitcoin address alphabet (no 0, O, I, l).
const base58Chars = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// =============================================================================
// Data Pools — Commerce
// =============================================================================

var productAdjectives = []string{
	"Rustic", "Elegant", "Handcrafted", "Refined", "Sleek",
	"Gorgeous", "Practical", "Modern", "Vintage", "Premium",
	"Luxurious", "Compact", "Ergonomic", "Lightweight", "Durable",
}

var productMaterials = []string{
	"Steel", "Wooden", "Granite", "Rubber", "Cotton",
	"Silk", "Leather", "Bamboo", "Bronze", "Copper",
	"Ceramic", "Plastic", "Glass", "Marble", "Titanium",
}

var productNouns = []string{
	"Chair", "Table", "Lamp", "Keyboard", "Mouse",
	"Backpack", "Watch", "Wallet", "Headphones", "Speaker",
	"Notebook", "Pen", "Mug", "Bottle", "Gloves",
}

var colors = []string{
	"Crimson", "Azure", "Emerald", "Ivory", "Coral",
	"Indigo", "Amber", "Jade", "Scarlet", "Turquoise",
	"Lavender", "Maroon", "Teal", "Orchid", "Cyan",
	"Magenta", "Gold", "Silver", "Pearl", "Sapphire",
}

// =============================================================================
// Data Pools — Internet
// =============================================================================

var emailDomains = []string{"example.com", "test.com", "mock.io", "demo.org"}

var tlds = []string{"com", "net", "org", "io", "dev", "app"}

var domainWords = []string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta",
	"theta", "lambda", "sigma", "omega", "nova", "pulse",
}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (iPad; CPU OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
}

var mimeTypes = []string{
	"application/json", "application/xml", "application/pdf",
	"application/zip", "application/gzip", "application/octet-stream",
	"text/html", "text/plain", "text/css", "text/csv",
	"image/png", "image/jpeg", "image/gif", "image/svg+xml", "image/webp",
	"audio/mpeg", "audio/wav", "audio/ogg",
	"video/mp4", "video/webm",
	"multipart/form-data",
}

var fileExtensions = []string{
	"pdf", "jpg", "png", "gif", "doc", "docx",
	"xls", "xlsx", "csv", "txt", "html", "css",
	"js", "json", "xml", "zip", "tar", "gz",
	"mp3", "mp4", "wav", "avi", "mov", "svg",
	"ppt", "pptx", "md", "yaml", "toml", "log",
}

// passwordChars excludes ambiguous characters.
const passwordChars = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789!@#$%"

// =============================================================================
// Data Pools — Health
// =============================================================================

var bloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var allergies = []string{
	"peanuts", "penicillin", "latex", "shellfish", "pollen",
	"dust mites", "eggs", "soy", "wheat", "none",
}
