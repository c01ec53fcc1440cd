package render

import "strings"

// countryFlags maps two-letter flag codes to their emoji.
var countryFlags = map[string]string{
	"AE": "🇦🇪", "DZ": "🇩🇿", "AL": "🇦🇱", "US": "🇺🇸", "GB": "🇬🇧",
	"FR": "🇫🇷", "DE": "🇩🇪", "IN": "🇮🇳", "CN": "🇨🇳", "JP": "🇯🇵",
	"CA": "🇨🇦", "AU": "🇦🇺", "BR": "🇧🇷", "IT": "🇮🇹", "ES": "🇪🇸",
	"RU": "🇷🇺", "SA": "🇸🇦", "QA": "🇶🇦", "KW": "🇰🇼", "BH": "🇧🇭",
	"OM": "🇴🇲", "EG": "🇪🇬", "JO": "🇯🇴", "LB": "🇱🇧", "MA": "🇲🇦",
	"TN": "🇹🇳", "LY": "🇱🇾", "SY": "🇸🇾", "IQ": "🇮🇶", "YE": "🇾🇪",
	"SD": "🇸🇩", "SO": "🇸🇴", "DJ": "🇩🇯", "KM": "🇰🇲", "MR": "🇲🇷",
}

// CountryFlag returns the flag emoji for a two-letter country code.
func CountryFlag(code string) string {
	if flag, ok := countryFlags[strings.ToUpper(code)]; ok {
		return flag
	}
	return "🏳️"
}

// authorityPrefixes maps law slug prefixes to issuing authority names.
var authorityPrefixes = []struct {
	prefix string
	name   string
}{
	{"uae-", "Federal Tax Authority"},
	{"ksa-", "Zakat, Tax and Customs Authority"},
	{"oman-", "Oman Tax Authority"},
	{"kwt-", "Ministry of Finance - Kuwait"},
	{"kuwait-", "Ministry of Finance - Kuwait"},
	{"qatar-", "General Tax Authority - Qatar"},
	{"bahrain-", "National Bureau for Revenue - Bahrain"},
}

// AuthorityName returns the issuing tax authority for a law slug.
func AuthorityName(lawSlug string) string {
	if lawSlug == "" {
		return "Tax Authority"
	}
	lower := strings.ToLower(lawSlug)
	for _, a := range authorityPrefixes {
		if strings.HasPrefix(lower, a.prefix) {
			return a.name
		}
	}
	return "GCC Secretariat General"
}
