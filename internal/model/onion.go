package model

import (
	"net/url"
	"regexp"
	"strings"
)

// OnionVersion is the hidden service address version a URL points at.
type OnionVersion int

const (
	// OnionNone means the host is not a recognizable onion address.
	OnionNone OnionVersion = 0
	// OnionV2 is a 16 character address (deprecated since October 2021).
	OnionV2 OnionVersion = 2
	// OnionV3 is a 56 character ed25519 address.
	OnionV3 OnionVersion = 3
)

const (
	onionSuffix     = ".onion"
	v2AddressLength = 16
	v3AddressLength = 56
)

// String returns a short badge for the version.
func (v OnionVersion) String() string {
	switch v {
	case OnionV2:
		return "v2"
	case OnionV3:
		return "v3"
	default:
		return "-"
	}
}

// DetectOnion reports the onion version of rawURL's host.
// URLs without a scheme are accepted ("abc...xyz.onion/path").
func DetectOnion(rawURL string) OnionVersion {
	host := onionHost(rawURL)
	if !strings.HasSuffix(host, onionSuffix) {
		return OnionNone
	}

	base := strings.TrimSuffix(host, onionSuffix)
	// Subdomains are allowed in front of the service address.
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[i+1:]
	}

	switch len(base) {
	case v2AddressLength:
		if isBase32(base) {
			return OnionV2
		}
	case v3AddressLength:
		if isBase32(base) {
			return OnionV3
		}
	}
	return OnionNone
}

// strictOnionURL is the whole accepted form: lowercase scheme, no
// userinfo, port, path, query or fragment.
var strictOnionURL = regexp.MustCompile(`^https?://[a-z2-7]{56}\.onion/?$`)

// ValidateOnionURL accepts only http(s) URLs whose host is a bare v3
// onion address, with an empty or "/" path. The input is matched as
// given, so surrounding whitespace is rejected.
func ValidateOnionURL(rawURL string) error {
	if !strictOnionURL.MatchString(rawURL) {
		return ErrInvalidOnionURL
	}
	return nil
}

// onionHost extracts the lowercased host from a URL that may lack a scheme.
func onionHost(rawURL string) string {
	s := strings.ToLower(strings.TrimSpace(rawURL))
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// isBase32 checks that s uses only the RFC 4648 lowercase alphabet.
func isBase32(s string) bool {
	for _, c := range s {
		isLowerLetter := c >= 'a' && c <= 'z'
		isBase32Digit := c >= '2' && c <= '7'
		if !isLowerLetter && !isBase32Digit {
			return false
		}
	}
	return true
}
