package normalizer

import (
	"regexp"
	"strings"
)

// AddressNormalizer rewrites raw Korean addresses into the form the VWorld
// geocoder resolves most reliably. The rules are literal rewrites and must run
// in order: the 성남시 분당구 special case has to fire before the general
// 경기도 collapse, otherwise the general rule corrupts it.
type AddressNormalizer struct {
	countryPrefixPattern *regexp.Regexp
}

// NewAddressNormalizer creates a normalizer with precompiled patterns.
func NewAddressNormalizer() *AddressNormalizer {
	return &AddressNormalizer{
		countryPrefixPattern: regexp.MustCompile(`^(대한민국|Republic of Korea)\s*`),
	}
}

// Normalize applies the rewrite pipeline. Pure and total: empty input passes
// through unchanged, no address is ever invented.
func (an *AddressNormalizer) Normalize(raw string) string {
	if raw == "" {
		return raw
	}

	// Step 1: strip leading country token
	normalized := an.countryPrefixPattern.ReplaceAllString(raw, "")

	// Step 2: named special case, must precede step 3
	normalized = strings.ReplaceAll(normalized, "경기도 성남시 분당구", "경기 성남시 분당구")

	// Step 3: general province long form → short form
	normalized = strings.ReplaceAll(normalized, "경기도", "경기")

	// Step 4: trim
	return strings.TrimSpace(normalized)
}
